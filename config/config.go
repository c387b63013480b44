// Package config loads the INI-style run configuration: instance location
// and graph shape, an optional known optimum, and per-algorithm parameter
// sections.
//
// No retrieved example repo imports an INI library (gopkg.in/ini.v1 or
// similar); this is a small hand-rolled line-oriented parser in the
// "sentinel errors only, no panics on malformed input" style tsp/validate.go
// and tsp/types.go use for their own checks.
package config

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/tspsolve/tsp"
)

// Error kinds, disjoint by failure stage.
var (
	// ErrBadRead indicates an I/O failure while reading the config file.
	ErrBadRead = errors.New("config: bad read")

	// ErrBadConfig indicates a missing required field or an ill-typed value.
	ErrBadConfig = errors.New("config: bad config")

	// ErrCanNotProceed indicates the config is well-formed but internally
	// inconsistent in a way that makes the requested run impossible (for
	// example, an optimal path given without a matching cost).
	ErrCanNotProceed = errors.New("config: can not proceed")
)

// Config is the parsed contents of one INI file, relative paths already
// resolved against the file's own directory.
type Config struct {
	InputPath string
	Info      tsp.GraphInfo

	OptimalPath []int // nil if [optimal] was absent
	OptimalCost int
	HasOptimal  bool

	Params tsp.Params
}

// section holds one [name] block's raw key/value pairs as encountered.
type section map[string]string

// Load reads and parses an INI config file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, ErrBadRead
	}
	defer f.Close()

	sections, err := parse(f)
	if err != nil {
		return Config{}, err
	}

	dir := filepath.Dir(path)
	return build(sections, dir)
}

// parse tokenizes r into a map of section name -> key/value pairs.
// Blank lines and lines starting with ';' or '#' are ignored.
func parse(r io.Reader) (map[string]section, error) {
	sections := make(map[string]section)
	var current string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(stripComment(sc.Text()))
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			current = strings.TrimSpace(line[1 : len(line)-1])
			if _, ok := sections[current]; !ok {
				sections[current] = section{}
			}
			continue
		}
		if current == "" {
			return nil, ErrBadConfig
		}
		key, value, ok := splitKV(line)
		if !ok {
			return nil, ErrBadConfig
		}
		sections[current][key] = value
	}
	if err := sc.Err(); err != nil {
		return nil, ErrBadRead
	}
	return sections, nil
}

func stripComment(line string) string {
	for _, marker := range []string{";", "#"} {
		if idx := strings.Index(line, marker); idx >= 0 {
			line = line[:idx]
		}
	}
	return line
}

func splitKV(line string) (key, value string, ok bool) {
	idx := strings.Index(line, "=")
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), true
}

// build turns raw sections into a validated Config, resolving InputPath
// against dir.
func build(sections map[string]section, dir string) (Config, error) {
	var cfg Config

	inst, ok := sections["instance"]
	if !ok {
		return Config{}, ErrBadConfig
	}
	inputPath, ok := inst["input_path"]
	if !ok || inputPath == "" {
		return Config{}, ErrBadConfig
	}
	if !filepath.IsAbs(inputPath) {
		inputPath = filepath.Join(dir, inputPath)
	}
	cfg.InputPath = inputPath

	sym, err := optionalBool(inst, "symmetric", false)
	if err != nil {
		return Config{}, err
	}
	full, err := optionalBool(inst, "full", false)
	if err != nil {
		return Config{}, err
	}
	cfg.Info = tsp.GraphInfo{Symmetric: sym, Full: full}

	if opt, ok := sections["optimal"]; ok {
		if pathStr, ok := opt["path"]; ok && pathStr != "" {
			path, err := parseIntList(pathStr)
			if err != nil {
				return Config{}, ErrBadConfig
			}
			cfg.OptimalPath = path
		}
		if costStr, ok := opt["cost"]; ok && costStr != "" {
			cost, err := strconv.Atoi(costStr)
			if err != nil {
				return Config{}, ErrBadConfig
			}
			cfg.OptimalCost = cost
			cfg.HasOptimal = true
		}
		if cfg.OptimalPath != nil && !cfg.HasOptimal {
			return Config{}, ErrCanNotProceed
		}
	}

	if rnd, ok := sections["random"]; ok {
		millis, err := requiredInt(rnd, "millis")
		if err != nil {
			return Config{}, err
		}
		cfg.Params.RandomMillis = millis
	}

	if ts, ok := sections["tabu_search"]; ok {
		itr, err := requiredInt(ts, "itr")
		if err != nil {
			return Config{}, err
		}
		noImprove, err := requiredInt(ts, "max_itr_no_improve")
		if err != nil {
			return Config{}, err
		}
		tenure, err := requiredInt(ts, "tabu_itr")
		if err != nil {
			return Config{}, err
		}
		cfg.Params.TabuItr = itr
		cfg.Params.TabuMaxItrNoImprove = noImprove
		cfg.Params.TabuTenure = tenure
	}

	if gen, ok := sections["genetic"]; ok {
		itr, err := requiredInt(gen, "itr")
		if err != nil {
			return Config{}, err
		}
		pop, err := requiredInt(gen, "population_size")
		if err != nil {
			return Config{}, err
		}
		children, err := requiredInt(gen, "children_per_itr")
		if err != nil {
			return Config{}, err
		}
		maxChildren, err := requiredInt(gen, "max_children_per_pair")
		if err != nil {
			return Config{}, err
		}
		maxVCount, err := requiredInt(gen, "max_v_count_crossover")
		if err != nil {
			return Config{}, err
		}
		mutations, err := requiredInt(gen, "mutations_per_1000")
		if err != nil {
			return Config{}, err
		}
		cfg.Params.GenItr = itr
		cfg.Params.GenPopulationSize = pop
		cfg.Params.GenChildrenPerItr = children
		cfg.Params.GenMaxChildrenPerPair = maxChildren
		cfg.Params.GenMaxVCountCrossover = maxVCount
		cfg.Params.GenMutationsPer1000 = mutations
	}

	return cfg, nil
}

func requiredInt(s section, key string) (int, error) {
	raw, ok := s[key]
	if !ok || raw == "" {
		return 0, ErrBadConfig
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrBadConfig
	}
	return v, nil
}

func optionalBool(s section, key string, def bool) (bool, error) {
	raw, ok := s[key]
	if !ok || raw == "" {
		return def, nil
	}
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, ErrBadConfig
	}
}

func parseIntList(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, ErrBadConfig
		}
		out = append(out, v)
	}
	return out, nil
}
