package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	db, config string
}

func newEnv(t *testing.T) env {
	dir := t.TempDir()
	return env{
		db:     filepath.Join(dir, "clinic.db"),
		config: filepath.Join(dir, "config.yaml"),
	}
}

// run executes the root command as actor. Flag values survive between
// executions, so every call sets the persistent flags explicitly.
func (e env) run(t *testing.T, as string, args ...string) (string, error) {
	t.Helper()
	out, _, err := e.runWithStderr(t, as, args...)
	return out, err
}

func (e env) runWithStderr(t *testing.T, as string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--db", e.db, "--config", e.config, "--as=" + as}, args...))
	err := execute(context.Background())
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "clinictrack")
}

func TestSkillList(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "", "skill", "list", "--category", "radiography")
	require.NoError(t, err)
	assert.Contains(t, out, "rad-intraoral")
	assert.Contains(t, out, "2 skills")

	_, err = e.run(t, "", "skill", "list", "--category", "surgery")
	assert.Error(t, err)
}

func TestTrainingFlow(t *testing.T) {
	e := newEnv(t)

	// Bootstrap: the first user needs no actor but must be an admin.
	_, err := e.run(t, "", "user", "add", "--name", "Mei", "--role", "newbie")
	require.Error(t, err)
	_, err = e.run(t, "", "user", "add", "--name", "Aiko", "--role", "admin")
	require.NoError(t, err)

	_, err = e.run(t, "", "user", "add", "--name", "Mei", "--role", "newbie")
	require.Error(t, err, "actor required once staff exist")
	_, err = e.run(t, "Aiko", "user", "add", "--name", "Mei", "--role", "newbie")
	require.NoError(t, err)
	_, err = e.run(t, "Aiko", "user", "add", "--name", "Ken", "--role", "mentor")
	require.NoError(t, err)

	out, err := e.run(t, "", "user", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Mei")
	assert.Contains(t, out, "3 staff")

	// A newbie may not record progress.
	_, err = e.run(t, "Mei", "progress", "set", "Mei", "hyg-tbi", "independent", "--comment", "")
	require.Error(t, err)

	out, err = e.run(t, "Ken", "progress", "set", "Mei", "hyg-tbi", "independent", "--comment", "clear and calm")
	require.NoError(t, err)
	assert.Contains(t, out, "Mei")

	_, err = e.run(t, "Ken", "progress", "set", "Mei", "hyg-tbi", "9", "--comment", "")
	require.Error(t, err)

	out, err = e.run(t, "Mei", "progress", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Tooth-brushing instruction")

	out, err = e.run(t, "Mei", "progress", "history", "--limit", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "by Ken")
	assert.Contains(t, out, "clear and calm")

	out, err = e.run(t, "", "standings")
	require.NoError(t, err)
	assert.Contains(t, out, "Mei")
	assert.Contains(t, out, "Ken")
}

func TestMemoCommands(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "", "user", "add", "--name", "Aiko", "--role", "admin")
	require.NoError(t, err)

	out, err := e.run(t, "Aiko", "memo", "add", "restock", "gauze")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved memo")

	out, err = e.run(t, "Aiko", "memo", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "restock gauze")

	_, err = e.run(t, "Aiko", "memo", "delete", "no-such-memo")
	assert.Error(t, err)

	_, err = e.run(t, "", "memo", "list")
	assert.Error(t, err, "memo list needs an actor")
}

func TestClinicName(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "", "user", "add", "--name", "Aiko", "--role", "admin")
	require.NoError(t, err)
	_, err = e.run(t, "Aiko", "user", "add", "--name", "Mei", "--role", "newbie")
	require.NoError(t, err)

	out, err := e.run(t, "", "clinic", "name")
	require.NoError(t, err)
	assert.Equal(t, "Clinic\n", out)

	_, err = e.run(t, "Mei", "clinic", "name", "Elsewhere")
	assert.Error(t, err)

	_, err = e.run(t, "Aiko", "clinic", "name", "Sakura", "Dental")
	require.NoError(t, err)

	out, err = e.run(t, "", "clinic", "name")
	require.NoError(t, err)
	assert.Equal(t, "Sakura Dental\n", out)
}

func TestErrorsReportedOnStderr(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "", "user", "add", "--name", "Aiko", "--role", "admin")
	require.NoError(t, err)

	out, errOut, err := e.runWithStderr(t, "Aiko", "progress", "set", "Aiko", "no-such-skill", "1", "--comment", "")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Error: ")
	assert.Contains(t, errOut, "no-such-skill")
}
