/*
File    : go-letter/file/file.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package file loads Letter source programs for the command-line front end.
// A program comes either from a file path or from standard input.
package file

import (
	"fmt"
	"io"
	"os"
)

// ReadSource reads an entire Letter program from the given path.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading source file: %w", err)
	}
	return string(data), nil
}

// ReadStdin reads an entire Letter program from the given reader,
// typically os.Stdin when no file or expression was supplied.
func ReadStdin(reader io.Reader) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("reading standard input: %w", err)
	}
	return string(data), nil
}

// Exists reports whether the given path exists and is a regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
