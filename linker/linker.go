// Package linker detects an installed LLVM linker driver and invokes
// it to turn a set of object files into an executable or a loadable
// shared library.
package linker

import (
	"os/exec"
	"strconv"
	"strings"

	"github.com/viant/forge/diag"
)

// Mode selects the artifact kind a Link call produces.
type Mode int

const (
	ModeExecutable Mode = iota
	ModeSharedLibrary
)

// linkerNames are the binaries probed for, in the order they are
// tried: the ELF driver, the Mach-O driver, then the COFF/PE driver.
var linkerNames = []string{"ld.lld", "ld64.lld", "lld-link"}

// Config holds the linker binary resolved for this process, keyed by
// the name that matched.
type Config struct {
	Path string
	Name string
}

// Detect probes PATH for the first of ld.lld, ld64.lld, or lld-link
// and returns a Config bound to it. It returns false if none is found.
func Detect() (Config, bool) {
	for _, name := range linkerNames {
		if path, err := exec.LookPath(name); err == nil {
			return Config{Path: path, Name: name}, true
		}
	}
	return Config{}, false
}

// Link invokes cfg's linker to combine objects into outputPath under
// mode, emitting diagnostics to messages. It reports whether linking
// succeeded.
func Link(messages *diag.Buffer, cfg Config, mode Mode, outputPath string, objects []string) bool {
	if cfg.Path == "" {
		messages.Emit(diag.New(diag.Error, "fl-3", "no linker detected"))
		return false
	}
	args := buildArgs(mode, outputPath, objects)
	cmd := exec.Command(cfg.Path, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			text := formatExitFailure(cfg, args, exitErr.ExitCode(), output)
			messages.Emit(diag.New(diag.Error, "fl-2", text))
			return false
		}
		messages.Emit(diag.New(diag.Error, "fl-1", "unable to spawn "+cfg.Name+": "+err.Error()))
		return false
	}
	return true
}

// buildArgs constructs the linker argument vector: --shared for
// ModeSharedLibrary, then -o outputPath, then every object path in
// order.
func buildArgs(mode Mode, outputPath string, objects []string) []string {
	var args []string
	if mode == ModeSharedLibrary {
		args = append(args, "--shared")
	}
	args = append(args, "-o", outputPath)
	args = append(args, objects...)
	return args
}

func formatExitFailure(cfg Config, args []string, exitCode int, output []byte) string {
	text := cfg.Name + " exited with status " + strconv.Itoa(exitCode) +
		", argv=" + cfg.Path + " " + strings.Join(args, " ")
	if len(output) > 0 {
		text += "\noutput:\n" + string(output)
	}
	return text
}
