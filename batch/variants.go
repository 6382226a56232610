// Package batch - variant plans and the pure change applicator.
package batch

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/crewsat/instance"
)

// Change operations understood by Apply.
const (
	OpRemoveCrew       = "remove_crew"
	OpExtendDuty       = "extend_duty"
	OpShiftDuty        = "shift_duty"
	OpAddOffRequest    = "add_off_request"
	OpRemoveOffRequest = "remove_off_request"
)

// MetaFile tags a generated instance directory with its variant identity.
const MetaFile = "meta.json"

// ErrUnknownOp indicates a change with an unrecognized op name.
var ErrUnknownOp = errors.New("batch: unknown change op")

// ErrNoSuchCrew indicates a change targeting a crew id absent from the
// instance.
var ErrNoSuchCrew = errors.New("batch: change targets unknown crew")

// ErrNoSuchDuty indicates a change targeting a duty id absent from the
// instance.
var ErrNoSuchDuty = errors.New("batch: change targets unknown duty")

// ErrBadChange indicates change parameters that cannot yield a valid duty
// window or request.
var ErrBadChange = errors.New("batch: change parameters out of range")

// Change is one edit applied to a base instance.
type Change struct {
	Op      string `json:"op"`
	CrewID  string `json:"crew_id,omitempty"`
	DutyID  string `json:"duty_id,omitempty"`
	Day     int    `json:"day,omitempty"`
	Minutes int    `json:"minutes,omitempty"`
	Penalty int64  `json:"penalty,omitempty"`
}

// Variant is a named bundle of changes.
type Variant struct {
	ID      string   `json:"scenario_id"`
	Name    string   `json:"name"`
	Changes []Change `json:"changes"`
}

// Plan is a whole sweep definition. BaseInstanceDir names the instance the
// variants derive from; a flag may override it.
type Plan struct {
	BaseInstanceDir string    `json:"base_instance_dir,omitempty"`
	Variants        []Variant `json:"variants"`
}

// Meta is the meta.json document of one generated instance directory.
type Meta struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	NChanges int    `json:"n_changes"`
}

// LoadPlan reads a plan file.
func LoadPlan(path string) (*Plan, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: read %s: %w", path, err)
	}
	var p Plan
	if err = json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("batch: parse %s: %w", path, err)
	}

	return &p, nil
}

// Apply derives a new instance by applying changes in order. The base is
// never mutated; all slices and maps of the result are fresh copies.
func Apply(base instance.Instance, changes []Change) (instance.Instance, error) {
	inst := cloneInstance(base)
	for i, ch := range changes {
		var err error
		switch ch.Op {
		case OpRemoveCrew:
			err = removeCrew(&inst, ch)
		case OpExtendDuty:
			err = extendDuty(&inst, ch)
		case OpShiftDuty:
			err = shiftDuty(&inst, ch)
		case OpAddOffRequest:
			err = addOffRequest(&inst, ch)
		case OpRemoveOffRequest:
			removeOffRequest(&inst, ch)
		default:
			err = fmt.Errorf("%q: %w", ch.Op, ErrUnknownOp)
		}
		if err != nil {
			return instance.Instance{}, fmt.Errorf("change %d: %w", i, err)
		}
	}

	return inst, nil
}

// removeCrew drops the member and every off request referencing it.
func removeCrew(inst *instance.Instance, ch Change) error {
	idx := -1
	for i, c := range inst.Crew {
		if c.ID == ch.CrewID {
			idx = i

			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%q: %w", ch.CrewID, ErrNoSuchCrew)
	}
	inst.Crew = append(inst.Crew[:idx], inst.Crew[idx+1:]...)

	kept := inst.OffRequests[:0]
	for _, r := range inst.OffRequests {
		if r.CrewID != ch.CrewID {
			kept = append(kept, r)
		}
	}
	inst.OffRequests = kept

	return nil
}

// extendDuty lengthens the duty by Minutes, clamping the end at midnight.
func extendDuty(inst *instance.Instance, ch Change) error {
	d, err := dutyAt(inst, ch.DutyID)
	if err != nil {
		return err
	}
	end := d.EndMin + ch.Minutes
	if end > instance.MinutesPerDay {
		end = instance.MinutesPerDay
	}
	if end <= d.StartMin {
		return fmt.Errorf("duty %q end=%d: %w", ch.DutyID, end, ErrBadChange)
	}
	d.EndMin = end

	return nil
}

// shiftDuty moves the whole window by Minutes (negative shifts earlier),
// clamping into the day while preserving the duration.
func shiftDuty(inst *instance.Instance, ch Change) error {
	d, err := dutyAt(inst, ch.DutyID)
	if err != nil {
		return err
	}
	var (
		dur   = d.DurationMin()
		start = d.StartMin + ch.Minutes
	)
	if start < 0 {
		start = 0
	}
	if start+dur > instance.MinutesPerDay {
		start = instance.MinutesPerDay - dur
	}
	d.StartMin = start
	d.EndMin = start + dur

	return nil
}

// addOffRequest appends a request for an existing member.
func addOffRequest(inst *instance.Instance, ch Change) error {
	if !crewExists(inst, ch.CrewID) {
		return fmt.Errorf("%q: %w", ch.CrewID, ErrNoSuchCrew)
	}
	if ch.Day < 1 || ch.Day > inst.Scenario.HorizonDays {
		return fmt.Errorf("day=%d: %w", ch.Day, ErrBadChange)
	}
	if ch.Penalty < 0 {
		return fmt.Errorf("penalty=%d: %w", ch.Penalty, ErrBadChange)
	}
	inst.OffRequests = append(inst.OffRequests, instance.OffRequest{
		CrewID:  ch.CrewID,
		Day:     ch.Day,
		Penalty: ch.Penalty,
	})

	return nil
}

// removeOffRequest drops the matching (crew, day) request; absence is not
// an error, so plans can be applied on top of already-trimmed bases.
func removeOffRequest(inst *instance.Instance, ch Change) {
	kept := inst.OffRequests[:0]
	for _, r := range inst.OffRequests {
		if r.CrewID == ch.CrewID && r.Day == ch.Day {
			continue
		}
		kept = append(kept, r)
	}
	inst.OffRequests = kept
}

func dutyAt(inst *instance.Instance, id string) (*instance.Duty, error) {
	for i := range inst.Duties {
		if inst.Duties[i].ID == id {
			return &inst.Duties[i], nil
		}
	}

	return nil, fmt.Errorf("%q: %w", id, ErrNoSuchDuty)
}

func crewExists(inst *instance.Instance, id string) bool {
	for _, c := range inst.Crew {
		if c.ID == id {
			return true
		}
	}

	return false
}

// cloneInstance deep-copies everything Apply may touch.
func cloneInstance(base instance.Instance) instance.Instance {
	inst := base
	inst.Crew = make([]instance.CrewMember, len(base.Crew))
	for i, c := range base.Crew {
		c.QualifiedTypes = append([]string(nil), c.QualifiedTypes...)
		inst.Crew[i] = c
	}
	inst.Duties = make([]instance.Duty, len(base.Duties))
	for i, d := range base.Duties {
		cov := make(map[instance.Role]int, len(d.Coverage))
		for role, n := range d.Coverage {
			cov[role] = n
		}
		d.Coverage = cov
		inst.Duties[i] = d
	}
	inst.OffRequests = append([]instance.OffRequest(nil), base.OffRequests...)

	return inst
}

// Generate materializes every variant of the plan under outDir, one
// instance directory per variant named by its id, and returns the
// directories in plan order.
func Generate(plan *Plan, base instance.Instance, outDir string) ([]string, error) {
	dirs := make([]string, 0, len(plan.Variants))
	for _, v := range plan.Variants {
		inst, err := Apply(base, v.Changes)
		if err != nil {
			return nil, fmt.Errorf("batch: variant %q: %w", v.ID, err)
		}
		dir := filepath.Join(outDir, v.ID)
		if err = instance.Save(dir, inst); err != nil {
			return nil, fmt.Errorf("batch: variant %q: %w", v.ID, err)
		}
		meta := Meta{ID: v.ID, Name: v.Name, NChanges: len(v.Changes)}
		if err = writeMeta(filepath.Join(dir, MetaFile), meta); err != nil {
			return nil, fmt.Errorf("batch: variant %q: %w", v.ID, err)
		}
		dirs = append(dirs, dir)
	}

	return dirs, nil
}

func writeMeta(path string, meta Meta) error {
	b, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')

	return os.WriteFile(path, b, 0o644)
}
