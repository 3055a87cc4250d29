// Package paths resuelve rutas relativas al directorio del ejecutable y
// deriva los nombres de los artefactos de salida.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"bucketx/internal/platform/errors"
)

// ResultsPrefix precede al nombre de la wordlist en los artefactos.
const ResultsPrefix = "Results-"

// ProgramDir retorna el directorio del ejecutable, con symlinks resueltos.
func ProgramDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "locate executable")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// Resolve retorna p tal cual si es absoluta; si no, relativa a base.
func Resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// Stem retorna el nombre base sin extensión: /x/wordlist.txt -> wordlist.
func Stem(p string) string {
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Artifacts agrupa las rutas de salida derivadas de una wordlist.
type Artifacts struct {
	Text  string
	CSV   string
	XLSX  string
	JSONL string
}

// ArtifactsFor deriva Results-<stem>.{txt,csv,xlsx,jsonl} dentro de dir.
func ArtifactsFor(dir, wordlist string) Artifacts {
	name := ResultsPrefix + Stem(wordlist)
	return Artifacts{
		Text:  filepath.Join(dir, name+".txt"),
		CSV:   filepath.Join(dir, name+".csv"),
		XLSX:  filepath.Join(dir, name+".xlsx"),
		JSONL: filepath.Join(dir, name+".jsonl"),
	}
}
