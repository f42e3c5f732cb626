package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcache/internal/adapters/fs"
	"go.trai.ch/depcache/internal/core/domain"
)

const projectRoot = "/project"

func newScanner(fsys afero.Fs) *fs.Hasher {
	return fs.NewHasher(fsys, fs.NewWalker(fsys, domain.DependencyFilePatterns))
}

func writeFiles(t *testing.T, fsys afero.Fs, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o600))
	}
}

func groovyProject() map[string]string {
	return map[string]string{
		"gradle/wrapper/gradle-wrapper.properties": "distributionUrl=gradle-8.5-bin.zip",
		"gradle/libs.versions.toml":                "[versions]\ngson = \"2.9.0\"",
		"settings.gradle":                          "include 'subproject1', 'subproject2'",
		"build.gradle":                             "plugins { id 'java' }",
		"subproject1/build.gradle":                 "dependencies { implementation 'commons-io:commons-io:2.11.0' }",
		"subproject2/build.gradle":                 "dependencies { implementation 'commons-cli:commons-cli:1.5.0' }",
		"subproject1/sub-sub-project1/build.gradle": "dependencies { implementation libs.gson }",
		"src/main/java/Main.java":                  "class Main {}",
		"README.md":                                "# project",
	}
}

func kotlinProject() map[string]string {
	return map[string]string{
		"buildSrc/src/main/java/Dependencies.kt":        "object Deps { const val gson = \"com.google.code.gson:gson:${Versions.gson}\" }",
		"buildSrc/src/main/java/Versions.kt":            "object Versions { const val gson = \"2.9.0\" }",
		"buildSrc/src/main/java/Other.kt":               "object Other",
		"gradle/wrapper/gradle-wrapper.properties":      "distributionUrl=gradle-8.5-bin.zip",
		"buildSrc/build.gradle.kts":                     "plugins { `kotlin-dsl` }",
		"settings.gradle.kts":                           "include(\"subproject1\")",
		"build.gradle.kts":                              "plugins { java }",
		"subproject1/build.gradle.kts":                  "dependencies { implementation(Deps.gson) }",
		"subproject2/build.gradle.kts":                  "dependencies { }",
		"subproject1/sub-sub-project1/build.gradle.kts": "dependencies { }",
	}
}

func TestScan_GroovyProject(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, projectRoot, groovyProject())

	data, err := newScanner(fsys).Scan(projectRoot, domain.UnlimitedDepth, nil)
	require.NoError(t, err)

	assert.Len(t, data, 7)
	for _, key := range []string{
		"/gradle/wrapper/gradle-wrapper.properties",
		"/gradle/libs.versions.toml",
		"/settings.gradle",
		"/build.gradle",
		"/subproject1/build.gradle",
		"/subproject2/build.gradle",
		"/subproject1/sub-sub-project1/build.gradle",
	} {
		assert.Contains(t, data, key)
	}
}

func TestScan_KotlinProject(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, projectRoot, kotlinProject())

	data, err := newScanner(fsys).Scan(projectRoot, domain.UnlimitedDepth, nil)
	require.NoError(t, err)

	assert.Len(t, data, 9)
	assert.Contains(t, data, "/buildSrc/src/main/java/Dependencies.kt")
	assert.Contains(t, data, "/buildSrc/src/main/java/Versions.kt")
	assert.Contains(t, data, "/buildSrc/build.gradle.kts")
	assert.NotContains(t, data, "/buildSrc/src/main/java/Other.kt")
}

func TestScan_Deterministic(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, projectRoot, kotlinProject())
	scanner := newScanner(fsys)

	first, err := scanner.Scan(projectRoot, domain.UnlimitedDepth, nil)
	require.NoError(t, err)
	second, err := scanner.Scan(projectRoot, domain.UnlimitedDepth, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScan_DepthLimit(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, projectRoot, groovyProject())
	scanner := newScanner(fsys)

	rootOnly, err := scanner.Scan(projectRoot, 0, nil)
	require.NoError(t, err)
	assert.Len(t, rootOnly, 2)
	assert.Contains(t, rootOnly, "/settings.gradle")
	assert.Contains(t, rootOnly, "/build.gradle")

	oneLevel, err := scanner.Scan(projectRoot, 1, nil)
	require.NoError(t, err)
	assert.Len(t, oneLevel, 5)
	assert.Contains(t, oneLevel, "/gradle/libs.versions.toml")
	assert.NotContains(t, oneLevel, "/gradle/wrapper/gradle-wrapper.properties")
	assert.NotContains(t, oneLevel, "/subproject1/sub-sub-project1/build.gradle")

	negative, err := scanner.Scan(projectRoot, -1, nil)
	require.NoError(t, err)
	assert.Equal(t, rootOnly, negative)
}

func TestScan_DigestIsLowercaseHexSHA256(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, projectRoot, map[string]string{"build.gradle": "hello"})

	data, err := newScanner(fsys).Scan(projectRoot, domain.UnlimitedDepth, nil)
	require.NoError(t, err)

	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", data["/build.gradle"])
}

func TestScan_ContentChangeChangesDigest(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, projectRoot, groovyProject())
	scanner := newScanner(fsys)

	before, err := scanner.Scan(projectRoot, domain.UnlimitedDepth, nil)
	require.NoError(t, err)

	writeFiles(t, fsys, projectRoot, map[string]string{"subproject2/build.gradle": "dependencies { }"})
	after, err := scanner.Scan(projectRoot, domain.UnlimitedDepth, nil)
	require.NoError(t, err)

	assert.NotEqual(t, before["/subproject2/build.gradle"], after["/subproject2/build.gradle"])
	assert.Equal(t, before["/build.gradle"], after["/build.gradle"])
}

func TestScan_SkipsVCSDirectories(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, projectRoot, map[string]string{
		"build.gradle":      "plugins { }",
		".git/build.gradle": "not a project file",
		".jj/build.gradle":  "not a project file",
	})

	data, err := newScanner(fsys).Scan(projectRoot, domain.UnlimitedDepth, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"/build.gradle"}, keys(data))
}

func TestScan_MissingRootFails(t *testing.T) {
	_, err := newScanner(afero.NewMemMapFs()).Scan("/does-not-exist", domain.UnlimitedDepth, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrWorkDirUnreadable.Error())
}

// vanishingDirFs fails to open one directory, as if the build deleted it mid-scan.
type vanishingDirFs struct {
	afero.Fs
	dir string
}

func (v vanishingDirFs) Open(name string) (afero.File, error) {
	if filepath.Clean(name) == v.dir {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrNotExist}
	}
	return v.Fs.Open(name)
}

func TestScan_UnreadableSubdirectoryIsSkippedWithWarning(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeFiles(t, mem, projectRoot, map[string]string{
		"build.gradle":             "plugins { }",
		"build/tmp/cache.gradle":   "generated",
		"subproject1/build.gradle": "dependencies { }",
	})
	fsys := vanishingDirFs{Fs: mem, dir: filepath.Join(projectRoot, "build", "tmp")}

	var warnings []string
	data, err := newScanner(fsys).Scan(projectRoot, domain.UnlimitedDepth, func(msg string) {
		warnings = append(warnings, msg)
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"/build.gradle", "/subproject1/build.gradle"}, keys(data))
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Failed to list directory")
	assert.Contains(t, warnings[0], filepath.Join("build", "tmp"))
}

func TestWalker_UnreadableSubdirectoryYieldsSkip(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeFiles(t, mem, projectRoot, map[string]string{
		"a/build.gradle": "",
		"b/build.gradle": "",
	})
	walker := fs.NewWalker(vanishingDirFs{Fs: mem, dir: filepath.Join(projectRoot, "a")}, domain.DependencyFilePatterns)

	var paths []string
	var skipped []string
	for rel, err := range walker.WalkMatching(projectRoot, domain.UnlimitedDepth) {
		if err != nil {
			var skip *fs.SkippedDirError
			require.ErrorAs(t, err, &skip)
			skipped = append(skipped, skip.Path)
			continue
		}
		paths = append(paths, rel)
	}

	assert.Equal(t, []string{"/b/build.gradle"}, paths)
	assert.Equal(t, []string{filepath.Join(projectRoot, "a")}, skipped)
}

func TestScan_DanglingFileIsSkippedWithWarning(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "build.gradle"), []byte("plugins { }"), 0o600))
	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "missing"), filepath.Join(tmpDir, "settings.gradle")))

	fsys := afero.NewOsFs()
	var warnings []string
	data, err := newScanner(fsys).Scan(tmpDir, domain.UnlimitedDepth, func(msg string) {
		warnings = append(warnings, msg)
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/build.gradle"}, keys(data))
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "File not found or is not a valid file")
	assert.Contains(t, warnings[0], "settings.gradle")
}

func TestWalker_Matches(t *testing.T) {
	walker := fs.NewWalker(afero.NewMemMapFs(), domain.DependencyFilePatterns)

	for _, name := range []string{
		"build.gradle", "build.gradle.kts", "gradle-wrapper.properties", "Versions.kt",
		"Dependencies.kt", "libs.versions.toml", "versions.properties",
	} {
		assert.True(t, walker.Matches(name), name)
	}
	for _, name := range []string{"gradle.properties", "Main.kt", "build.gradle.bak", "versions.toml"} {
		assert.False(t, walker.Matches(name), name)
	}
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
