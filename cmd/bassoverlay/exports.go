//go:build windows

// The long tail of the bass.dll 2.x surface. Bodies declare no
// parameters; callers clean their own arguments and only the constant
// answer matters.

package main

import "C"

//export BASS_GetCPU
func BASS_GetCPU() C.uint { return 0 }

//export BASS_GetDSoundObject
func BASS_GetDSoundObject() C.uintptr_t { return 0 }

//export BASS_GetDeviceDescription
func BASS_GetDeviceDescription() C.uintptr_t { return 0 }

//export BASS_GetInfo
func BASS_GetInfo() C.uintptr_t { return 0 }

//export BASS_GetGlobalVolumes
func BASS_GetGlobalVolumes() C.int { return ok }

//export BASS_SetGlobalVolumes
func BASS_SetGlobalVolumes() C.int { return ok }

//export BASS_SetBufferLength
func BASS_SetBufferLength() C.int { return ok }

//export BASS_SetCLSID
func BASS_SetCLSID() C.int { return ok }

//export BASS_SetLogCurves
func BASS_SetLogCurves() C.int { return ok }

//export BASS_SetNetConfig
func BASS_SetNetConfig() C.int { return ok }

//export BASS_Apply3D
func BASS_Apply3D() C.int { return ok }

//export BASS_Get3DFactors
func BASS_Get3DFactors() C.int { return ok }

//export BASS_Get3DPosition
func BASS_Get3DPosition() C.int { return ok }

//export BASS_Set3DAlgorithm
func BASS_Set3DAlgorithm() C.int { return ok }

//export BASS_Set3DFactors
func BASS_Set3DFactors() C.int { return ok }

//export BASS_Set3DPosition
func BASS_Set3DPosition() C.int { return ok }

//export BASS_GetEAXParameters
func BASS_GetEAXParameters() C.int { return ok }

//export BASS_SetEAXParameters
func BASS_SetEAXParameters() C.int { return ok }

//export BASS_CDDoor
func BASS_CDDoor() C.int { return ok }

//export BASS_CDFree
func BASS_CDFree() C.int { return ok }

//export BASS_CDGetID
func BASS_CDGetID() C.uintptr_t { return 0 }

//export BASS_CDGetTrackLength
func BASS_CDGetTrackLength() C.uint { return 0 }

//export BASS_CDGetTracks
func BASS_CDGetTracks() C.uint { return 0 }

//export BASS_CDInDrive
func BASS_CDInDrive() C.int { return ok }

//export BASS_CDInit
func BASS_CDInit() C.int { return ok }

//export BASS_CDPlay
func BASS_CDPlay() C.int { return ok }

//export BASS_ChannelBytes2Seconds
func BASS_ChannelBytes2Seconds() C.uint { return 0 }

//export BASS_ChannelGet3DAttributes
func BASS_ChannelGet3DAttributes() C.int { return ok }

//export BASS_ChannelGet3DPosition
func BASS_ChannelGet3DPosition() C.int { return ok }

//export BASS_ChannelGetAttributes
func BASS_ChannelGetAttributes() C.uint { return 0 }

//export BASS_ChannelGetData
func BASS_ChannelGetData() C.uint { return 0 }

//export BASS_ChannelGetEAXMix
func BASS_ChannelGetEAXMix() C.uint { return 0 }

//export BASS_ChannelGetFlags
func BASS_ChannelGetFlags() C.uint { return 0 }

//export BASS_ChannelGetLevel
func BASS_ChannelGetLevel() C.uint { return 0 }

//export BASS_ChannelGetPosition
func BASS_ChannelGetPosition() C.uint { return 0 }

//export BASS_ChannelIsSliding
func BASS_ChannelIsSliding() C.int { return ok }

//export BASS_ChannelRemoveDSP
func BASS_ChannelRemoveDSP() C.int { return ok }

//export BASS_ChannelRemoveFX
func BASS_ChannelRemoveFX() C.int { return ok }

//export BASS_ChannelRemoveLink
func BASS_ChannelRemoveLink() C.int { return ok }

//export BASS_ChannelRemoveSync
func BASS_ChannelRemoveSync() C.int { return ok }

//export BASS_ChannelSeconds2Bytes
func BASS_ChannelSeconds2Bytes() C.uint { return 0 }

//export BASS_ChannelSet3DAttributes
func BASS_ChannelSet3DAttributes() C.int { return ok }

//export BASS_ChannelSet3DPosition
func BASS_ChannelSet3DPosition() C.int { return ok }

//export BASS_ChannelSetAttributes
func BASS_ChannelSetAttributes() C.int { return ok }

//export BASS_ChannelSetDSP
func BASS_ChannelSetDSP() C.int { return ok }

//export BASS_ChannelSetEAXMix
func BASS_ChannelSetEAXMix() C.int { return ok }

//export BASS_ChannelSetFX
func BASS_ChannelSetFX() C.int { return ok }

//export BASS_ChannelSetLink
func BASS_ChannelSetLink() C.int { return ok }

//export BASS_ChannelSetPosition
func BASS_ChannelSetPosition() C.int { return ok }

//export BASS_ChannelSetSync
func BASS_ChannelSetSync() C.int { return ok }

//export BASS_ChannelSlideAttributes
func BASS_ChannelSlideAttributes() C.int { return ok }

//export BASS_FXGetParameters
func BASS_FXGetParameters() C.int { return ok }

//export BASS_FXSetParameters
func BASS_FXSetParameters() C.int { return ok }

//export BASS_MusicGetChannelVol
func BASS_MusicGetChannelVol() C.uint { return 0 }

//export BASS_MusicGetLength
func BASS_MusicGetLength() C.uint { return 0 }

//export BASS_MusicGetName
func BASS_MusicGetName() C.uintptr_t { return 0 }

//export BASS_MusicPlayEx
func BASS_MusicPlayEx() C.int { return ok }

//export BASS_MusicPreBuf
func BASS_MusicPreBuf() C.int { return ok }

//export BASS_MusicSetAmplify
func BASS_MusicSetAmplify() C.int { return ok }

//export BASS_MusicSetChannelVol
func BASS_MusicSetChannelVol() C.int { return ok }

//export BASS_MusicSetPanSep
func BASS_MusicSetPanSep() C.int { return ok }

//export BASS_MusicSetPositionScaler
func BASS_MusicSetPositionScaler() C.int { return ok }

//export BASS_RecordFree
func BASS_RecordFree() C.int { return ok }

//export BASS_RecordGetDeviceDescription
func BASS_RecordGetDeviceDescription() C.uintptr_t { return 0 }

//export BASS_RecordGetInfo
func BASS_RecordGetInfo() C.uintptr_t { return 0 }

//export BASS_RecordGetInput
func BASS_RecordGetInput() C.uint { return 0 }

//export BASS_RecordGetInputName
func BASS_RecordGetInputName() C.uintptr_t { return 0 }

//export BASS_RecordInit
func BASS_RecordInit() C.int { return ok }

//export BASS_RecordSetInput
func BASS_RecordSetInput() C.int { return ok }

//export BASS_RecordStart
func BASS_RecordStart() C.uint { return handle }

//export BASS_SampleCreate
func BASS_SampleCreate() C.uint { return handle }

//export BASS_SampleCreateDone
func BASS_SampleCreateDone() C.int { return ok }

//export BASS_SampleGetInfo
func BASS_SampleGetInfo() C.int { return ok }

//export BASS_SamplePlay3D
func BASS_SamplePlay3D() C.uint { return handle }

//export BASS_SamplePlay3DEx
func BASS_SamplePlay3DEx() C.uint { return handle }

//export BASS_SamplePlayEx
func BASS_SamplePlayEx() C.uint { return handle }

//export BASS_SampleSetInfo
func BASS_SampleSetInfo() C.int { return ok }

//export BASS_SampleStop
func BASS_SampleStop() C.int { return ok }

//export BASS_StreamCreate
func BASS_StreamCreate() C.uint { return handle }

//export BASS_StreamCreateURL
func BASS_StreamCreateURL() C.uint { return handle }

//export BASS_StreamGetFilePosition
func BASS_StreamGetFilePosition() C.uint { return 0 }

//export BASS_StreamGetLength
func BASS_StreamGetLength() C.uint { return 0 }

//export BASS_StreamGetTags
func BASS_StreamGetTags() C.uintptr_t { return 0 }

//export BASS_StreamPreBuf
func BASS_StreamPreBuf() C.int { return ok }
