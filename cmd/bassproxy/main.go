//go:build windows

// bassproxy builds the forwarding bass.dll. It loads the renamed
// original, bass_real.dll, from its own directory when the host maps it
// and passes the core call surface through. Exports the original cannot
// serve, or the whole surface when bass_real.dll is absent, answer the
// stub constants so the host keeps running either way.
//
// Build: go build -buildmode=c-shared -o bass.dll ./cmd/bassproxy
package main

import "C"

import (
	"log"

	"bassgate/pkg/bassstub"
	"bassgate/pkg/proxy"
)

const (
	ok     = C.int(bassstub.OK)
	handle = C.uint(bassstub.DummyHandle)
)

var real *proxy.Library

func init() {
	log.SetPrefix("bass: ")
	log.SetFlags(0)
	l, err := proxy.Open()
	real = l
	if err != nil {
		log.Printf("[WARNING] %v, answering all calls locally", err)
	}
}

func main() {}

//export BASS_GetVersion
func BASS_GetVersion() C.uint {
	return C.uint(real.Call("BASS_GetVersion"))
}

//export BASS_Init
func BASS_Init(device C.int, freq, flags C.uint, win, clsid C.uintptr_t) C.int {
	return C.int(real.Call("BASS_Init",
		uintptr(device), uintptr(freq), uintptr(flags), uintptr(win), uintptr(clsid)))
}

//export BASS_Free
func BASS_Free() C.int {
	return C.int(real.Call("BASS_Free"))
}

//export BASS_ErrorGetCode
func BASS_ErrorGetCode() C.int {
	return C.int(real.Call("BASS_ErrorGetCode"))
}

//export BASS_Start
func BASS_Start() C.int { return C.int(real.Call("BASS_Start")) }

//export BASS_Stop
func BASS_Stop() C.int { return C.int(real.Call("BASS_Stop")) }

//export BASS_Pause
func BASS_Pause() C.int { return C.int(real.Call("BASS_Pause")) }

//export BASS_Update
func BASS_Update() C.int { return C.int(real.Call("BASS_Update")) }

//export BASS_GetVolume
func BASS_GetVolume() C.uint { return C.uint(real.Call("BASS_GetVolume")) }

//export BASS_SetVolume
func BASS_SetVolume(volume C.uint) C.int {
	return C.int(real.Call("BASS_SetVolume", uintptr(volume)))
}

//export BASS_MusicLoad
func BASS_MusicLoad(mem C.int, file C.uintptr_t, offset, length, flags C.uint) C.uint {
	return C.uint(real.Call("BASS_MusicLoad",
		uintptr(mem), uintptr(file), uintptr(offset), uintptr(length), uintptr(flags)))
}

//export BASS_MusicPlay
func BASS_MusicPlay(h C.uint) C.int {
	return C.int(real.Call("BASS_MusicPlay", uintptr(h)))
}

//export BASS_MusicFree
func BASS_MusicFree(h C.uint) C.int {
	return C.int(real.Call("BASS_MusicFree", uintptr(h)))
}

//export BASS_SampleLoad
func BASS_SampleLoad(mem C.int, file C.uintptr_t, offset, length, max, flags C.uint) C.uint {
	return C.uint(real.Call("BASS_SampleLoad",
		uintptr(mem), uintptr(file), uintptr(offset), uintptr(length), uintptr(max), uintptr(flags)))
}

//export BASS_SamplePlay
func BASS_SamplePlay(h C.uint) C.uint {
	return C.uint(real.Call("BASS_SamplePlay", uintptr(h)))
}

//export BASS_SampleFree
func BASS_SampleFree(h C.uint) C.int {
	return C.int(real.Call("BASS_SampleFree", uintptr(h)))
}

//export BASS_StreamCreateFile
func BASS_StreamCreateFile(mem C.int, file C.uintptr_t, offset, length, flags C.uint) C.uint {
	return C.uint(real.Call("BASS_StreamCreateFile",
		uintptr(mem), uintptr(file), uintptr(offset), uintptr(length), uintptr(flags)))
}

//export BASS_StreamPlay
func BASS_StreamPlay(h C.uint, flush C.int, flags C.uint) C.int {
	return C.int(real.Call("BASS_StreamPlay", uintptr(h), uintptr(flush), uintptr(flags)))
}

//export BASS_StreamFree
func BASS_StreamFree(h C.uint) C.int {
	return C.int(real.Call("BASS_StreamFree", uintptr(h)))
}

//export BASS_ChannelPause
func BASS_ChannelPause(h C.uint) C.int {
	return C.int(real.Call("BASS_ChannelPause", uintptr(h)))
}

//export BASS_ChannelResume
func BASS_ChannelResume(h C.uint) C.int {
	return C.int(real.Call("BASS_ChannelResume", uintptr(h)))
}

//export BASS_ChannelStop
func BASS_ChannelStop(h C.uint) C.int {
	return C.int(real.Call("BASS_ChannelStop", uintptr(h)))
}

//export BASS_ChannelIsActive
func BASS_ChannelIsActive(h C.uint) C.int {
	return C.int(real.Call("BASS_ChannelIsActive", uintptr(h)))
}
