//go:build windows

package ffi

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// openLibrary loads a dynamic library on Windows
func openLibrary(path string) (uintptr, error) {
	h, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, fmt.Errorf("LoadLibrary failed: %w", err)
	}
	return uintptr(h), nil
}

// getSymbol retrieves a symbol from the loaded library on Windows
func getSymbol(handle uintptr, name string) (uintptr, error) {
	addr, err := windows.GetProcAddress(windows.Handle(handle), name)
	if err != nil {
		return 0, fmt.Errorf("GetProcAddress(%s) failed: %w", name, err)
	}
	return addr, nil
}

// closeLibrary unloads the library
func closeLibrary(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}
