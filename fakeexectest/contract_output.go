package fakeexectest

import (
	"bytes"
	"strconv"

	"github.com/ruffel/fakeexec"
)

func outputContracts() []TestCase {
	return []TestCase{
		{
			Category:    CategoryOutput,
			Name:        "text-stdout",
			Description: "A text stdout with empty stderr and exit 0 is replayed exactly",
			Run: func(t T, opts []fakeexec.Option) {
				spec := fakeexec.Spec{
					Name:   contractName("temp"),
					Stdout: []byte("Temperature: 30 Celsius\n"),
				}

				install(t, spec, opts)
				assertReplays(t, spec)
			},
		},
		{
			Category:    CategoryOutput,
			Name:        "stderr-and-stdout",
			Description: "Both streams are replayed to the right descriptor",
			Run: func(t T, opts []fakeexec.Option) {
				spec := fakeexec.Spec{
					Name:     contractName("both"),
					Stdout:   []byte("line one\nline two\n"),
					Stderr:   []byte("warning: something\n"),
					ExitCode: 1,
				}

				install(t, spec, opts)
				assertReplays(t, spec)
			},
		},
		{
			Category:    CategoryOutput,
			Name:        "empty-streams",
			Description: "Empty stdout and stderr produce no output at all",
			Run: func(t T, opts []fakeexec.Option) {
				spec := fakeexec.Spec{Name: contractName("empty")}

				install(t, spec, opts)
				assertReplays(t, spec)
			},
		},
		{
			Category:    CategoryOutput,
			Name:        "binary-bytes",
			Description: "Every byte value survives, including NUL and invalid UTF-8",
			Run: func(t T, opts []fakeexec.Option) {
				stdout := make([]byte, 256)
				for i := range stdout {
					stdout[i] = byte(i)
				}

				stderr := make([]byte, 256)
				for i := range stderr {
					stderr[i] = byte(255 - i)
				}

				spec := fakeexec.Spec{
					Name:   contractName("binary"),
					Stdout: stdout,
					Stderr: stderr,
				}

				install(t, spec, opts)
				assertReplays(t, spec)
			},
		},
		{
			Category:    CategoryOutput,
			Name:        "no-trailing-newline",
			Description: "Output without a trailing newline is not padded",
			Run: func(t T, opts []fakeexec.Option) {
				spec := fakeexec.Spec{
					Name:   contractName("nonewline"),
					Stdout: []byte("no newline"),
					Stderr: []byte("\n\n"),
				}

				install(t, spec, opts)
				assertReplays(t, spec)
			},
		},
		{
			Category:    CategoryOutput,
			Name:        "large-streams",
			Description: "Multi-megabyte streams are not truncated",
			Run: func(t T, opts []fakeexec.Option) {
				spec := fakeexec.Spec{
					Name:   contractName("large"),
					Stdout: bytes.Repeat([]byte("0123456789abcdef"), 512*1024),
					Stderr: bytes.Repeat([]byte{0x00, 0xff, 0x7f}, 300*1024),
				}

				install(t, spec, opts)
				assertReplays(t, spec)
			},
		},
		{
			Category:    CategoryOutput,
			Name:        "exit-codes",
			Description: "Exit codes across 0-255 are reported exactly",
			Run: func(t T, opts []fakeexec.Option) {
				for _, code := range []int{0, 1, 2, 42, 126, 127, 128, 255} {
					spec := fakeexec.Spec{
						Name:     contractName("exit", strconv.Itoa(code)),
						Stdout:   []byte("code " + strconv.Itoa(code) + "\n"),
						ExitCode: code,
					}

					install(t, spec, opts)
					assertReplays(t, spec)
				}
			},
		},
		{
			Category:    CategoryOutput,
			Name:        "arguments-ignored",
			Description: "Arguments do not change the replayed output",
			Run: func(t T, opts []fakeexec.Option) {
				spec := fakeexec.Spec{
					Name:     contractName("args"),
					Stdout:   []byte("fixed\n"),
					ExitCode: 3,
				}

				install(t, spec, opts)
				assertReplays(t, spec)
				assertReplaysLine(t, spec, spec.Name+` --verbose 'a b' '$HOME' "'quoted'" -- ; *`)
			},
		},
		{
			Category:    CategoryOutput,
			Name:        "repeatable",
			Description: "Running the mock again replays the same output",
			Run: func(t T, opts []fakeexec.Option) {
				spec := fakeexec.Spec{
					Name:   contractName("repeat"),
					Stdout: []byte("again\n"),
				}

				install(t, spec, opts)

				for range 3 {
					assertReplays(t, spec)
				}
			},
		},
	}
}
