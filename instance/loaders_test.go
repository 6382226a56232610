package instance_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crewsat/instance"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := validInstance()

	require.NoError(t, instance.Save(dir, in))

	out, err := instance.Load(dir)
	require.NoError(t, err)
	require.Equal(t, in.Crew, out.Crew)
	require.Equal(t, in.Duties, out.Duties)
	require.Equal(t, in.Scenario, out.Scenario)
	require.Equal(t, in.OffRequests, out.OffRequests)
}

func TestLoad_MissingPreferencesMeansNoRequests(t *testing.T) {
	dir := t.TempDir()
	in := validInstance()
	require.NoError(t, instance.Save(dir, in))
	require.NoError(t, os.Remove(filepath.Join(dir, instance.PreferencesFile)))

	out, err := instance.Load(dir)
	require.NoError(t, err)
	require.Empty(t, out.OffRequests)
}

func TestLoad_MissingRequiredFileFails(t *testing.T) {
	dir := t.TempDir()

	_, err := instance.Load(dir)
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist), "want wrapped os.ErrNotExist, got %v", err)
	require.Contains(t, err.Error(), instance.CrewFile)
}

func TestLoad_MalformedJSONFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, instance.Save(dir, validInstance()))
	require.NoError(t, os.WriteFile(filepath.Join(dir, instance.DutiesFile), []byte("{not json"), 0o644))

	_, err := instance.Load(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), instance.DutiesFile)
}

func TestLoadScenario_AppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, instance.ScenarioFile)
	require.NoError(t, os.WriteFile(path, []byte(`{"horizon_days": 10, "weights": {"worked_days": 3}}`), 0o644))

	sc, err := instance.LoadScenario(path)
	require.NoError(t, err)

	want := instance.DefaultScenario()
	want.HorizonDays = 10
	want.Weights.WorkedDays = 3
	require.Equal(t, want, sc)
}
