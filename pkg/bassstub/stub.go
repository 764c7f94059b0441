// Package bassstub answers vintage bass.dll calls without any audio
// backend. Every export a pre-2005 game asks for gets a constant that
// reads as success, so the game keeps running with sound silently
// disabled. The same table backs the pure stub library and the
// forwarding proxy's fallback path.
package bassstub

const (
	// OK is TRUE for the BOOL-returning exports.
	OK = 1
	// DummyHandle stands in for every channel, sample, stream and
	// music handle; old BASS treats any non-zero handle as valid.
	DummyHandle = 1
	// Version is 2.2.3.0 packed the way BASS_GetVersion reports it.
	Version = 0x02020300
)

// ReturnKind classifies an export by the constant it answers with.
type ReturnKind int

const (
	// Bool exports report success.
	Bool ReturnKind = iota
	// Dword exports report a zero count, position or level.
	Dword
	// Handle exports hand out DummyHandle.
	Handle
	// Pointer exports return a null pointer.
	Pointer
	// VersionNumber is BASS_GetVersion alone.
	VersionNumber
)

// value is what a kind answers on the wire.
func (k ReturnKind) value() uintptr {
	switch k {
	case Bool:
		return OK
	case Handle:
		return DummyHandle
	case VersionNumber:
		return Version
	}
	return 0
}

// Exports maps every stubbed symbol to its return kind. The set covers
// the full export surface of bass.dll 2.x as vintage games link it.
var Exports = map[string]ReturnKind{
	"BASS_GetVersion":   VersionNumber,
	"BASS_Init":         Bool,
	"BASS_Free":         Bool,
	"BASS_Start":        Bool,
	"BASS_Stop":         Bool,
	"BASS_Pause":        Bool,
	"BASS_Update":       Bool,
	"BASS_ErrorGetCode": Dword,

	"BASS_GetCPU":               Dword,
	"BASS_GetDSoundObject":      Pointer,
	"BASS_GetDeviceDescription": Pointer,
	"BASS_GetInfo":              Pointer,
	"BASS_GetVolume":            Dword,
	"BASS_SetVolume":            Bool,
	"BASS_GetGlobalVolumes":     Bool,
	"BASS_SetGlobalVolumes":     Bool,
	"BASS_SetBufferLength":      Bool,
	"BASS_SetCLSID":             Bool,
	"BASS_SetLogCurves":         Bool,
	"BASS_SetNetConfig":         Bool,

	"BASS_Apply3D":          Bool,
	"BASS_Get3DFactors":     Bool,
	"BASS_Get3DPosition":    Bool,
	"BASS_Set3DAlgorithm":   Bool,
	"BASS_Set3DFactors":     Bool,
	"BASS_Set3DPosition":    Bool,
	"BASS_GetEAXParameters": Bool,
	"BASS_SetEAXParameters": Bool,

	"BASS_CDDoor":           Bool,
	"BASS_CDFree":           Bool,
	"BASS_CDGetID":          Pointer,
	"BASS_CDGetTrackLength": Dword,
	"BASS_CDGetTracks":      Dword,
	"BASS_CDInDrive":        Bool,
	"BASS_CDInit":           Bool,
	"BASS_CDPlay":           Bool,

	"BASS_ChannelBytes2Seconds":   Dword,
	"BASS_ChannelGet3DAttributes": Bool,
	"BASS_ChannelGet3DPosition":   Bool,
	"BASS_ChannelGetAttributes":   Dword,
	"BASS_ChannelGetData":         Dword,
	"BASS_ChannelGetEAXMix":       Dword,
	"BASS_ChannelGetFlags":        Dword,
	"BASS_ChannelGetLevel":        Dword,
	"BASS_ChannelGetPosition":     Dword,
	"BASS_ChannelIsActive":        Bool,
	"BASS_ChannelIsSliding":       Bool,
	"BASS_ChannelPause":           Bool,
	"BASS_ChannelRemoveDSP":       Bool,
	"BASS_ChannelRemoveFX":        Bool,
	"BASS_ChannelRemoveLink":      Bool,
	"BASS_ChannelRemoveSync":      Bool,
	"BASS_ChannelResume":          Bool,
	"BASS_ChannelSeconds2Bytes":   Dword,
	"BASS_ChannelSet3DAttributes": Bool,
	"BASS_ChannelSet3DPosition":   Bool,
	"BASS_ChannelSetAttributes":   Bool,
	"BASS_ChannelSetDSP":          Bool,
	"BASS_ChannelSetEAXMix":       Bool,
	"BASS_ChannelSetFX":           Bool,
	"BASS_ChannelSetLink":         Bool,
	"BASS_ChannelSetPosition":     Bool,
	"BASS_ChannelSetSync":         Bool,
	"BASS_ChannelSlideAttributes": Bool,
	"BASS_ChannelStop":            Bool,

	"BASS_FXGetParameters": Bool,
	"BASS_FXSetParameters": Bool,

	"BASS_MusicLoad":              Handle,
	"BASS_MusicFree":              Bool,
	"BASS_MusicGetChannelVol":     Dword,
	"BASS_MusicGetLength":         Dword,
	"BASS_MusicGetName":           Pointer,
	"BASS_MusicPlay":              Bool,
	"BASS_MusicPlayEx":            Bool,
	"BASS_MusicPreBuf":            Bool,
	"BASS_MusicSetAmplify":        Bool,
	"BASS_MusicSetChannelVol":     Bool,
	"BASS_MusicSetPanSep":         Bool,
	"BASS_MusicSetPositionScaler": Bool,

	"BASS_RecordFree":                 Bool,
	"BASS_RecordGetDeviceDescription": Pointer,
	"BASS_RecordGetInfo":              Pointer,
	"BASS_RecordGetInput":             Dword,
	"BASS_RecordGetInputName":         Pointer,
	"BASS_RecordInit":                 Bool,
	"BASS_RecordSetInput":             Bool,
	"BASS_RecordStart":                Handle,

	"BASS_SampleCreate":     Handle,
	"BASS_SampleCreateDone": Bool,
	"BASS_SampleFree":       Bool,
	"BASS_SampleGetInfo":    Bool,
	"BASS_SampleLoad":       Handle,
	"BASS_SamplePlay":       Handle,
	"BASS_SamplePlay3D":     Handle,
	"BASS_SamplePlay3DEx":   Handle,
	"BASS_SamplePlayEx":     Handle,
	"BASS_SampleSetInfo":    Bool,
	"BASS_SampleStop":       Bool,

	"BASS_StreamCreate":          Handle,
	"BASS_StreamCreateFile":      Handle,
	"BASS_StreamCreateURL":       Handle,
	"BASS_StreamFree":            Bool,
	"BASS_StreamGetFilePosition": Dword,
	"BASS_StreamGetLength":       Dword,
	"BASS_StreamGetTags":         Pointer,
	"BASS_StreamPlay":            Bool,
	"BASS_StreamPreBuf":          Bool,
}

// Answer returns the stub value for an export and whether the export is
// part of the stubbed surface. Unknown names answer zero, which reads
// as FALSE, null or an invalid handle depending on the caller.
func Answer(name string) (uintptr, bool) {
	k, ok := Exports[name]
	if !ok {
		return 0, false
	}
	return k.value(), true
}
