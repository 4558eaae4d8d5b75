//go:build windows

// Command seticon replaces the icon group of a Windows executable with the
// entries of an .ico file, or with the normalized single-size icon the
// icoarray pipeline would embed.
package main

import (
	"flag"
	"fmt"
	"os"
	"syscall"
	"unsafe"

	"github.com/edward-ap/iconheader/internal/icon"
)

const (
	rtIcon       = 3
	rtGroupIcon  = 14
	langNeutral  = 0x0409
	defaultGroup = 1
)

var (
	kernel                  = syscall.NewLazyDLL("kernel32.dll")
	procBeginUpdateResource = kernel.NewProc("BeginUpdateResourceW")
	procUpdateResource      = kernel.NewProc("UpdateResourceW")
	procEndUpdateResource   = kernel.NewProc("EndUpdateResourceW")
)

func main() {
	exePath := flag.String("exe", "", "path to target exe")
	iconPath := flag.String("icon", "", "path to .ico or .png file")
	normalize := flag.Bool("normalize", false, "embed only the best frame, re-encoded at 32x32")
	flag.Parse()

	if *exePath == "" || *iconPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	entries, err := loadEntries(*iconPath, *normalize)
	if err != nil {
		exitErr(err)
	}
	handle, err := beginUpdate(*exePath)
	if err != nil {
		exitErr(err)
	}
	defer endUpdate(handle)

	for i, entry := range entries {
		if err := updateIcon(handle, uint16(i+1), entry.Data); err != nil {
			exitErr(err)
		}
	}
	if err := updateGroup(handle, defaultGroup, icon.GroupDirectory(entries, 1)); err != nil {
		exitErr(err)
	}
}

// loadEntries returns the icon entries to embed. Without normalize the file
// must already be an .ico and is used as is.
func loadEntries(path string, normalize bool) ([]icon.Entry, error) {
	if !normalize {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read icon: %w", err)
		}
		return icon.ParseICO(data)
	}
	c, err := icon.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read icon: %w", err)
	}
	f, err := icon.Select(c, icon.DefaultSize)
	if err != nil {
		return nil, err
	}
	img, err := icon.Normalize(c, f, icon.DefaultSize)
	if err != nil {
		return nil, err
	}
	data, err := icon.EncodeICO(img, icon.DefaultSize)
	if err != nil {
		return nil, err
	}
	return icon.ParseICO(data)
}

func beginUpdate(exe string) (syscall.Handle, error) {
	ptr, err := syscall.UTF16PtrFromString(exe)
	if err != nil {
		return 0, err
	}
	handle, _, callErr := procBeginUpdateResource.Call(uintptr(unsafe.Pointer(ptr)), uintptr(0))
	if handle == 0 {
		if callErr != nil && callErr != syscall.Errno(0) {
			return 0, callErr
		}
		return 0, fmt.Errorf("BeginUpdateResource failed")
	}
	return syscall.Handle(handle), nil
}

func updateIcon(handle syscall.Handle, id uint16, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty icon data")
	}
	return updateResource(handle, rtIcon, id, data)
}

func updateGroup(handle syscall.Handle, id uint16, data []byte) error {
	return updateResource(handle, rtGroupIcon, id, data)
}

func updateResource(handle syscall.Handle, resType uint16, id uint16, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("resource data empty")
	}
	ret, _, err := procUpdateResource.Call(
		uintptr(handle),
		uintptr(resType),
		uintptr(id),
		uintptr(langNeutral),
		uintptr(unsafe.Pointer(&data[0])),
		uintptr(len(data)),
	)
	if ret == 0 {
		if err != nil && err != syscall.Errno(0) {
			return err
		}
		return fmt.Errorf("UpdateResource failed")
	}
	return nil
}

func endUpdate(handle syscall.Handle) {
	ret, _, err := procEndUpdateResource.Call(uintptr(handle), uintptr(0))
	if ret == 0 && err != nil && err != syscall.Errno(0) {
		fmt.Fprintf(os.Stderr, "EndUpdateResource: %v\n", err)
	}
}

func exitErr(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
