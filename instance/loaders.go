// Package instance - JSON instance directories.
//
// An instance directory contains:
//
//	crew.json        — {"crew": [...]}
//	duties.json      — {"duties": [...]}
//	scenario.json    — flat Scenario object (absent fields take defaults)
//	preferences.json — {"off_requests": [...]}, optional
//
// Load never validates beyond JSON shape; run Validate on the result before
// building models. Save is the exact inverse and always writes all four
// files so generated variants stay self-describing.
package instance

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File names inside an instance directory.
const (
	CrewFile        = "crew.json"
	DutiesFile      = "duties.json"
	ScenarioFile    = "scenario.json"
	PreferencesFile = "preferences.json"
)

type crewFile struct {
	Crew []CrewMember `json:"crew"`
}

type dutiesFile struct {
	Duties []Duty `json:"duties"`
}

type preferencesFile struct {
	OffRequests []OffRequest `json:"off_requests"`
}

// Load reads a whole instance directory. A missing preferences.json means
// "no off requests"; every other missing or malformed file is an error
// wrapped with its path.
func Load(dir string) (Instance, error) {
	var (
		inst Instance
		err  error
	)

	if inst.Crew, err = LoadCrew(filepath.Join(dir, CrewFile)); err != nil {
		return Instance{}, err
	}
	if inst.Duties, err = LoadDuties(filepath.Join(dir, DutiesFile)); err != nil {
		return Instance{}, err
	}
	if inst.Scenario, err = LoadScenario(filepath.Join(dir, ScenarioFile)); err != nil {
		return Instance{}, err
	}
	if inst.OffRequests, err = LoadOffRequests(filepath.Join(dir, PreferencesFile)); err != nil {
		return Instance{}, err
	}

	return inst, nil
}

// LoadCrew reads a crew.json file.
func LoadCrew(path string) ([]CrewMember, error) {
	var wrapper crewFile
	if err := readJSON(path, &wrapper); err != nil {
		return nil, err
	}

	return wrapper.Crew, nil
}

// LoadDuties reads a duties.json file.
func LoadDuties(path string) ([]Duty, error) {
	var wrapper dutiesFile
	if err := readJSON(path, &wrapper); err != nil {
		return nil, err
	}

	return wrapper.Duties, nil
}

// LoadScenario reads a scenario.json file. Fields absent from the file keep
// the DefaultScenario values, so a minimal file only has to set what it
// changes.
func LoadScenario(path string) (Scenario, error) {
	sc := DefaultScenario()
	if err := readJSON(path, &sc); err != nil {
		return Scenario{}, err
	}

	return sc, nil
}

// LoadOffRequests reads a preferences.json file. A missing file is not an
// error: it yields no requests.
func LoadOffRequests(path string) ([]OffRequest, error) {
	var wrapper preferencesFile
	if err := readJSON(path, &wrapper); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	return wrapper.OffRequests, nil
}

// Save writes the instance as a directory, creating it if needed.
// preferences.json is always written (an empty request list stays explicit).
func Save(dir string, inst Instance) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("instance: create %s: %w", dir, err)
	}

	if err := writeJSON(filepath.Join(dir, CrewFile), crewFile{Crew: inst.Crew}); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, DutiesFile), dutiesFile{Duties: inst.Duties}); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, ScenarioFile), inst.Scenario); err != nil {
		return err
	}

	return writeJSON(filepath.Join(dir, PreferencesFile), preferencesFile{OffRequests: inst.OffRequests})
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("instance: read %s: %w", path, err)
	}
	if err = json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("instance: parse %s: %w", path, err)
	}

	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("instance: encode %s: %w", path, err)
	}
	if err = os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("instance: write %s: %w", path, err)
	}

	return nil
}
