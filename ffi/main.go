// Package main exposes the resolved engine options over a C ABI.
//
// Build with:
//
//	go build -buildmode=c-shared -o libja2options.so ./ffi
//
// One heap-resident options record lives behind each opaque handle. The
// caller owns the handle and every string returned by the accessors; both
// must be released explicitly through FreeEngineOptions and FreeCString.
// Passing a null handle to an accessor is a contract violation and panics;
// it is not a recoverable error.
package main

/*
#include <stdbool.h>
#include <stddef.h>
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"runtime/cgo"
	"unsafe"

	"github.com/simonmarcel/ja2-stracciatella/pkg/cli"
	"github.com/simonmarcel/ja2-stracciatella/pkg/config"
	"github.com/simonmarcel/ja2-stracciatella/pkg/engine"
	"github.com/simonmarcel/ja2-stracciatella/pkg/launcher"
	"github.com/simonmarcel/ja2-stracciatella/pkg/logger"
	"github.com/simonmarcel/ja2-stracciatella/pkg/resources"
)

// optionsFromHandle dereferences a handle created by CreateEngineOptions.
func optionsFromHandle(handle C.uintptr_t) *engine.Options {
	if handle == 0 {
		logger.Panic("null engine options handle")
	}
	return cgo.Handle(handle).Value().(*engine.Options)
}

// goArgs copies a C argument vector into Go strings.
func goArgs(array **C.char, length C.size_t) []string {
	if array == nil || length == 0 {
		return nil
	}
	ptrs := unsafe.Slice(array, int(length))
	args := make([]string, len(ptrs))
	for i, p := range ptrs {
		args[i] = C.GoString(p)
	}
	return args
}

// CreateEngineOptions resolves the engine options from the settings file
// and the given argument vector. Returns 0 after logging the failure when
// resolution does not succeed; prints usage when help was requested.
//
//export CreateEngineOptions
func CreateEngineOptions(array **C.char, length C.size_t) C.uintptr_t {
	opts, err := config.ResolveOptions(goArgs(array, length))
	if err != nil {
		logger.Error(err.Error())
		return 0
	}

	if opts.ShowHelp {
		fmt.Print(cli.UsageText())
	}

	return C.uintptr_t(cgo.NewHandle(opts))
}

// WriteEngineOptions persists the record back to the settings file.
//
//export WriteEngineOptions
func WriteEngineOptions(handle C.uintptr_t) C.bool {
	opts := optionsFromHandle(handle)
	store := config.NewStore(opts.StracciatellaHome)
	if err := store.Write(opts); err != nil {
		logger.Error(err.Error())
		return false
	}
	return true
}

// FreeEngineOptions releases the record behind the handle. A 0 handle is a
// no-op; double-freeing a live handle is the caller's responsibility to
// avoid.
//
//export FreeEngineOptions
func FreeEngineOptions(handle C.uintptr_t) {
	if handle == 0 {
		return
	}
	cgo.Handle(handle).Delete()
}

// GetStracciatellaHome returns the settings home. Caller frees.
//
//export GetStracciatellaHome
func GetStracciatellaHome(handle C.uintptr_t) *C.char {
	return C.CString(optionsFromHandle(handle).StracciatellaHome)
}

// GetVanillaDataDir returns the data dir. Caller frees.
//
//export GetVanillaDataDir
func GetVanillaDataDir(handle C.uintptr_t) *C.char {
	return C.CString(optionsFromHandle(handle).VanillaDataDir)
}

//export SetVanillaDataDir
func SetVanillaDataDir(handle C.uintptr_t, dataDir *C.char) {
	optionsFromHandle(handle).VanillaDataDir = C.GoString(dataDir)
}

//export GetNumberOfMods
func GetNumberOfMods(handle C.uintptr_t) C.uint32_t {
	return C.uint32_t(len(optionsFromHandle(handle).Mods))
}

// GetMod returns the mod identifier at index. An out-of-range index is a
// contract violation and panics. Caller frees.
//
//export GetMod
func GetMod(handle C.uintptr_t, index C.uint32_t) *C.char {
	mods := optionsFromHandle(handle).Mods
	if int(index) >= len(mods) {
		logger.Panicf("invalid mod index for engine options: %d", uint32(index))
	}
	return C.CString(mods[index])
}

//export GetResolutionX
func GetResolutionX(handle C.uintptr_t) C.uint16_t {
	return C.uint16_t(optionsFromHandle(handle).Resolution.Width)
}

//export GetResolutionY
func GetResolutionY(handle C.uintptr_t) C.uint16_t {
	return C.uint16_t(optionsFromHandle(handle).Resolution.Height)
}

//export SetResolution
func SetResolution(handle C.uintptr_t, x, y C.uint16_t) {
	optionsFromHandle(handle).Resolution = engine.Resolution{
		Width:  uint16(x),
		Height: uint16(y),
	}
}

// GetResourceVersion returns the ordinal of the resource version enum.
//
//export GetResourceVersion
func GetResourceVersion(handle C.uintptr_t) C.int32_t {
	return C.int32_t(optionsFromHandle(handle).ResourceVersion)
}

// SetResourceVersion sets the resource version from its tag. Unknown tags
// leave the record unchanged.
//
//export SetResourceVersion
func SetResourceVersion(handle C.uintptr_t, version *C.char) {
	parsed, err := resources.FromString(C.GoString(version))
	if err != nil {
		return
	}
	optionsFromHandle(handle).ResourceVersion = parsed
}

// GetResourceVersionString returns the tag of a resource version ordinal.
// Caller frees.
//
//export GetResourceVersionString
func GetResourceVersionString(version C.int32_t) *C.char {
	return C.CString(resources.ResourceVersion(version).String())
}

//export ShouldShowHelp
func ShouldShowHelp(handle C.uintptr_t) C.bool {
	return C.bool(optionsFromHandle(handle).ShowHelp)
}

//export ShouldRunUnitTests
func ShouldRunUnitTests(handle C.uintptr_t) C.bool {
	return C.bool(optionsFromHandle(handle).RunUnitTests)
}

//export ShouldRunEditor
func ShouldRunEditor(handle C.uintptr_t) C.bool {
	return C.bool(optionsFromHandle(handle).RunEditor)
}

//export ShouldStartInFullscreen
func ShouldStartInFullscreen(handle C.uintptr_t) C.bool {
	return C.bool(optionsFromHandle(handle).StartInFullscreen)
}

//export SetStartInFullscreen
func SetStartInFullscreen(handle C.uintptr_t, value C.bool) {
	optionsFromHandle(handle).StartInFullscreen = bool(value)
}

//export ShouldStartInWindow
func ShouldStartInWindow(handle C.uintptr_t) C.bool {
	return C.bool(optionsFromHandle(handle).StartInWindow)
}

//export ShouldStartInDebugMode
func ShouldStartInDebugMode(handle C.uintptr_t) C.bool {
	return C.bool(optionsFromHandle(handle).StartInDebugMode)
}

//export ShouldStartWithoutSound
func ShouldStartWithoutSound(handle C.uintptr_t) C.bool {
	return C.bool(optionsFromHandle(handle).StartWithoutSound)
}

//export SetStartWithoutSound
func SetStartWithoutSound(handle C.uintptr_t, value C.bool) {
	optionsFromHandle(handle).StartWithoutSound = bool(value)
}

// FindJa2Executable derives the engine executable path from the launcher's
// own path. Caller frees.
//
//export FindJa2Executable
func FindJa2Executable(launcherPath *C.char) *C.char {
	return C.CString(launcher.ExecutablePath(C.GoString(launcherPath)))
}

// FreeCString releases a string previously returned by an accessor. A null
// pointer is a no-op.
//
//export FreeCString
func FreeCString(s *C.char) {
	if s == nil {
		return
	}
	C.free(unsafe.Pointer(s))
}

func main() {}
