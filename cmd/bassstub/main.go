//go:build windows

// bassstub builds the drop-in no-audio bass.dll replacement. Every
// export a vintage game links against is present and answers a constant
// that reads as success, so the game runs with sound silently disabled.
//
// Build: go build -buildmode=c-shared -o bass.dll ./cmd/bassstub
package main

import "C"

import "bassgate/pkg/bassstub"

func main() {}

const (
	ok     = C.int(bassstub.OK)
	handle = C.uint(bassstub.DummyHandle)
)

//export BASS_GetVersion
func BASS_GetVersion() C.uint { return C.uint(bassstub.Version) }

//export BASS_Init
func BASS_Init(device C.int, freq, flags C.uint, win, clsid C.uintptr_t) C.int { return ok }

//export BASS_Free
func BASS_Free() C.int { return ok }

//export BASS_ErrorGetCode
func BASS_ErrorGetCode() C.int { return 0 }

//export BASS_Start
func BASS_Start() C.int { return ok }

//export BASS_Stop
func BASS_Stop() C.int { return ok }

//export BASS_Pause
func BASS_Pause() C.int { return ok }

//export BASS_Update
func BASS_Update() C.int { return ok }

//export BASS_GetVolume
func BASS_GetVolume() C.uint { return 0 }

//export BASS_SetVolume
func BASS_SetVolume(volume C.uint) C.int { return ok }

//export BASS_MusicLoad
func BASS_MusicLoad(mem C.int, file C.uintptr_t, offset, length, flags C.uint) C.uint {
	return handle
}

//export BASS_MusicPlay
func BASS_MusicPlay(h C.uint) C.int { return ok }

//export BASS_MusicFree
func BASS_MusicFree(h C.uint) C.int { return ok }

//export BASS_SampleLoad
func BASS_SampleLoad(mem C.int, file C.uintptr_t, offset, length, max, flags C.uint) C.uint {
	return handle
}

//export BASS_SamplePlay
func BASS_SamplePlay(h C.uint) C.uint { return handle }

//export BASS_SampleFree
func BASS_SampleFree(h C.uint) C.int { return ok }

//export BASS_StreamCreateFile
func BASS_StreamCreateFile(mem C.int, file C.uintptr_t, offset, length, flags C.uint) C.uint {
	return handle
}

//export BASS_StreamPlay
func BASS_StreamPlay(h C.uint, flush C.int, flags C.uint) C.int { return ok }

//export BASS_StreamFree
func BASS_StreamFree(h C.uint) C.int { return ok }

//export BASS_ChannelPause
func BASS_ChannelPause(h C.uint) C.int { return ok }

//export BASS_ChannelResume
func BASS_ChannelResume(h C.uint) C.int { return ok }

//export BASS_ChannelStop
func BASS_ChannelStop(h C.uint) C.int { return ok }

//export BASS_ChannelIsActive
func BASS_ChannelIsActive(h C.uint) C.int { return ok }
