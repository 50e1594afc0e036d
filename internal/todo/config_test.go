package todo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/todo"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func isolatedEnv(t *testing.T) map[string]string {
	t.Helper()

	return map[string]string{"XDG_CONFIG_HOME": t.TempDir()}
}

func Test_LoadConfig_Returns_Defaults_When_No_Files(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg, err := todo.LoadConfig(todo.LoadConfigInput{WorkDirOverride: dir, Env: isolatedEnv(t)})
	require.NoError(t, err)

	assert.Equal(t, "TODO.md", cfg.File)
	assert.Equal(t, todo.ColorAuto, cfg.Color)
	assert.Equal(t, "git", cfg.Git)
	assert.Empty(t, cfg.LogLevel)
	assert.Equal(t, dir, cfg.EffectiveCwd)
	assert.Empty(t, cfg.Sources.Global)
	assert.Empty(t, cfg.Sources.Project)
}

func Test_LoadConfig_Layers_Global_Project_And_Flags(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	env := isolatedEnv(t)

	globalPath := filepath.Join(env["XDG_CONFIG_HOME"], "kpd", "config.toml")
	writeConfig(t, globalPath, "file = \"GLOBAL.md\"\ngit = \"/usr/bin/git\"\ncolor = \"never\"\n")

	projectPath := filepath.Join(dir, ".kpd.json")
	writeConfig(t, projectPath, `{
		// project wins over global
		"file": "PROJECT.md",
		"log_level": "info",
	}`)

	cfg, err := todo.LoadConfig(todo.LoadConfigInput{
		WorkDirOverride: dir,
		ColorOverride:   todo.ColorAlways,
		Env:             env,
	})
	require.NoError(t, err)

	assert.Equal(t, "PROJECT.md", cfg.File)
	assert.Equal(t, "/usr/bin/git", cfg.Git)
	assert.Equal(t, todo.ColorAlways, cfg.Color)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, globalPath, cfg.Sources.Global)
	assert.Equal(t, projectPath, cfg.Sources.Project)
}

func Test_LoadConfig_Reads_Project_TOML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, ".kpd.toml"), "file = \"TASKS.md\"\n")

	cfg, err := todo.LoadConfig(todo.LoadConfigInput{
		WorkDirOverride: dir,
		FileOverride:    "OVERRIDE.md",
		Env:             isolatedEnv(t),
	})
	require.NoError(t, err)

	assert.Equal(t, "OVERRIDE.md", cfg.File)
	assert.Equal(t, filepath.Join(dir, ".kpd.toml"), cfg.Sources.Project)
}

func Test_LoadConfig_Uses_Explicit_Config_Instead_Of_Project(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, ".kpd.json"), `{"file": "PROJECT.md"}`)
	writeConfig(t, filepath.Join(dir, "custom.json"), `{"file": "CUSTOM.md"}`)

	cfg, err := todo.LoadConfig(todo.LoadConfigInput{
		WorkDirOverride: dir,
		ConfigPath:      "custom.json",
		Env:             isolatedEnv(t),
	})
	require.NoError(t, err)
	assert.Equal(t, "CUSTOM.md", cfg.File)
}

func Test_LoadConfig_Takes_Log_Level_From_Environment(t *testing.T) {
	t.Parallel()

	env := isolatedEnv(t)
	env["KPD_LOG"] = "debug"

	cfg, err := todo.LoadConfig(todo.LoadConfigInput{WorkDirOverride: t.TempDir(), Env: env})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func Test_LoadConfig_Fails_When_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		file   string
		body   string
		input  todo.LoadConfigInput
		wantIs error
	}{
		{name: "BadJSON", file: ".kpd.json", body: `{invalid`, wantIs: todo.ErrConfigInvalid},
		{name: "BadTOML", file: ".kpd.toml", body: `file = `, wantIs: todo.ErrConfigInvalid},
		{name: "UnknownTOMLKey", file: ".kpd.toml", body: "editor = \"vi\"\n", wantIs: todo.ErrConfigInvalid},
		{name: "UnknownJSONKey", file: ".kpd.json", body: "{\n  // typo\n  \"fiel\": \"TASKS.md\",\n}", wantIs: todo.ErrConfigInvalid},
		{name: "EmptyFileJSON", file: ".kpd.json", body: `{"file": ""}`, wantIs: todo.ErrFileNameEmpty},
		{name: "EmptyFileTOML", file: ".kpd.toml", body: "file = \"\"\n", wantIs: todo.ErrFileNameEmpty},
		{name: "FileWithDirectory", file: ".kpd.json", body: `{"file": "docs/TODO.md"}`, wantIs: todo.ErrFileNameInvalid},
		{name: "BadColor", file: ".kpd.json", body: `{"color": "sometimes"}`, wantIs: todo.ErrColorInvalid},
		{name: "MissingExplicit", input: todo.LoadConfigInput{ConfigPath: "nope.json"}, wantIs: todo.ErrConfigFileNotFound},
		{name: "BadColorFlag", input: todo.LoadConfigInput{ColorOverride: "rainbow"}, wantIs: todo.ErrColorInvalid},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			if testCase.file != "" {
				writeConfig(t, filepath.Join(dir, testCase.file), testCase.body)
			}

			input := testCase.input
			input.WorkDirOverride = dir
			input.Env = isolatedEnv(t)

			_, err := todo.LoadConfig(input)
			require.ErrorIs(t, err, testCase.wantIs)
		})
	}
}
