// Package searchpath serializes edits to a process-wide, list-valued
// environment variable such as PATH.
//
// Every Registry in the process shares one lock, so an Insert or Remove is an
// atomic read-modify-write with respect to every other Insert or Remove,
// whichever Registry issued it. Code that calls os.Setenv on the same
// variable directly bypasses that lock.
//
// Usage:
//
//	reg := searchpath.Default()
//	if err := reg.Insert(binDir); err != nil {
//		return err
//	}
//	defer func() { _ = reg.Remove(binDir) }()
package searchpath
