package engine

import "fmt"

// ComponentID enumerates every known component kind the wire format
// defines. Only a subset (see dispatch.go) carries a typed schema; every
// other value still needs a stable name for diagnostics and for the
// raw-passthrough path.
type ComponentID int32

const (
	ComponentInvalid ComponentID = -1
	ComponentNone    ComponentID = 0

	ComponentTransform                           ComponentID = 1
	ComponentMeshFilter                          ComponentID = 2
	ComponentMeshRenderer                        ComponentID = 3
	ComponentSkinnedMeshRenderer                 ComponentID = 4
	ComponentLineRenderer                        ComponentID = 5
	ComponentTrailRenderer                       ComponentID = 6
	ComponentTextMesh                            ComponentID = 7
	ComponentAnimation                           ComponentID = 8
	ComponentLight                               ComponentID = 9
	ComponentLensFlare                           ComponentID = 10
	ComponentParticleSystem                      ComponentID = 11
	ComponentProjector                           ComponentID = 12
	ComponentMeshCollider                        ComponentID = 13
	ComponentSphereCollider                      ComponentID = 14
	ComponentBoxCollider                         ComponentID = 15
	ComponentCapsuleCollider                     ComponentID = 16
	ComponentRigidbody                           ComponentID = 17
	ComponentAudioSource                         ComponentID = 18
	ComponentConstantForce                       ComponentID = 19
	ComponentBezierSplineTrack                   ComponentID = 20
	ComponentTrackSegment                        ComponentID = 21
	ComponentTrackLink                           ComponentID = 22
	ComponentRigidbodyAxisRotationLogic          ComponentID = 23
	ComponentBackAndForthSawLogic                ComponentID = 24
	ComponentCheckpointLogic                     ComponentID = 25
	ComponentLaserLogic                          ComponentID = 26
	ComponentLightFlickerLogic                   ComponentID = 27
	ComponentSceneryCameraLogic                  ComponentID = 28
	ComponentGroup                               ComponentID = 29
	ComponentSkyboxAdder                         ComponentID = 30
	ComponentLevelCubeMapRenderer                ComponentID = 31
	ComponentLevelGodRayCaster                   ComponentID = 32
	ComponentTutorialBoxText                     ComponentID = 33
	ComponentBoostPadLogic                       ComponentID = 34
	ComponentCloudCreator                        ComponentID = 35
	ComponentFlyingRingLogic                     ComponentID = 36
	ComponentPopupBlockerLogic                   ComponentID = 37
	ComponentPulseLight                          ComponentID = 38
	ComponentPulseMaterial                       ComponentID = 39
	ComponentSmoothRandomPosition                ComponentID = 40
	ComponentSoccerGoalLogic                     ComponentID = 41
	ComponentVirusMineLogic                      ComponentID = 42
	ComponentAnimateUVs                          ComponentID = 43
	ComponentBrightenCarHeadlights               ComponentID = 44
	ComponentTrackManipulationNode               ComponentID = 45
	ComponentSpawnLaserLogic                     ComponentID = 46
	ComponentGameData                            ComponentID = 47
	ComponentGraphicsSettings                    ComponentID = 48
	ComponentAudioSettings                       ComponentID = 49
	ComponentControlsSettings                    ComponentID = 50
	ComponentProfile                             ComponentID = 51
	ComponentLevelSet                            ComponentID = 52
	ComponentToolInputCombos                     ComponentID = 53
	ComponentColorPreset                         ComponentID = 54
	ComponentLocalLeaderboard                    ComponentID = 55
	ComponentAxisRotationLogic                   ComponentID = 56
	ComponentParticleEmitLogic                   ComponentID = 57
	ComponentVirusSpiritSpawner                  ComponentID = 58
	ComponentGlitchTrigger                       ComponentID = 59
	ComponentTeleporter                          ComponentID = 60
	ComponentPulseRotateOnTrigger                ComponentID = 61
	ComponentTeleporterEntrance                  ComponentID = 62
	ComponentTeleporterExit                      ComponentID = 63
	ComponentControlScheme                       ComponentID = 64
	ComponentDeviceToSchemeLinks                 ComponentID = 65
	ComponentObjectSpawnCircle                   ComponentID = 66
	ComponentInterpolateToPositionOnTrigger      ComponentID = 67
	ComponentEngageBrokenPieces                  ComponentID = 68
	ComponentGravityToggle                       ComponentID = 69
	ComponentCarSpawner                          ComponentID = 70
	ComponentRaceStartCarSpawner                 ComponentID = 71
	ComponentLevelEditorCarSpawner               ComponentID = 72
	ComponentOnlyActiveInLevelEditor             ComponentID = 73
	ComponentInfoDisplayLogic                    ComponentID = 74
	ComponentMusicTrigger                        ComponentID = 75
	ComponentTabPopulator                        ComponentID = 76
	ComponentAdventureAbilitySettings            ComponentID = 77
	ComponentIndicatorDisplayLogic               ComponentID = 78
	ComponentPulseCoreLogic                      ComponentID = 79
	ComponentPulseAll                            ComponentID = 80
	ComponentTeleporterExitCheckpoint            ComponentID = 81
	ComponentLevelSettings                       ComponentID = 82
	ComponentWingCorruptionZone                  ComponentID = 83
	ComponentGenerateCreditsNames                ComponentID = 84
	ComponentIntroCutsceneLightFadeIn            ComponentID = 85
	ComponentQuarantineTrigger                   ComponentID = 86
	ComponentCarScreenTextDecodeTrigger          ComponentID = 87
	ComponentGlitchFieldLogic                    ComponentID = 88
	ComponentFogSkyboxAmbientChangeTrigger       ComponentID = 89
	ComponentFinalCountdownLogic                 ComponentID = 90
	ComponentSetActiveOnIntroCutsceneStarted     ComponentID = 91
	ComponentSphericalGravityTrigger             ComponentID = 92
	ComponentRaceEndLogic                        ComponentID = 93
	ComponentEnableAbilitiesTrigger              ComponentID = 94
	ComponentSphericalGravity                    ComponentID = 95
	ComponentGlobalFogLogic                      ComponentID = 96
	ComponentCreditsNameOrbLogic                 ComponentID = 97
	ComponentDisableLocalCarWarnings             ComponentID = 98
	ComponentCustomName                          ComponentID = 99
	ComponentSplineSegment                       ComponentID = 100
	ComponentWarningPulseLight                   ComponentID = 101
	ComponentRumbleZone                          ComponentID = 102
	ComponentHideOnVirusSpiritEvent              ComponentID = 103
	ComponentTrackAttachment                     ComponentID = 104
	ComponentLevelPlaylist                       ComponentID = 105
	ComponentProfileProgress                     ComponentID = 106
	ComponentGeneralSettings                     ComponentID = 107
	ComponentReplayAllPurposeTrigger             ComponentID = 108
	ComponentWorkshopPublishedFileInfos          ComponentID = 109
	ComponentWarpAnchor                          ComponentID = 110
	ComponentSetActiveOnMIDIEvent                ComponentID = 111
	ComponentTurnLightOnNearCar                  ComponentID = 112
	ComponentTraffic                             ComponentID = 113
	ComponentTrackManipulatorNode                ComponentID = 114
	ComponentTurnLightOnNearCarTrigger           ComponentID = 115
	ComponentAudioEventTrigger                   ComponentID = 116
	ComponentLevelEditorSettings                 ComponentID = 117
	ComponentEmpireProximityDoorLogic            ComponentID = 118
	ComponentBiodome                             ComponentID = 119
	ComponentTunnelHorrorLogic                   ComponentID = 120
	ComponentLogicTrigger                        ComponentID = 121
	ComponentChangeEmissiveColorLogicTriggerListener ComponentID = 122
	ComponentMoveLogicTriggerListener            ComponentID = 123
	ComponentRotateLogicTriggerListener          ComponentID = 124
	ComponentScaleLogicTriggerListener           ComponentID = 125
	ComponentVirusSpiritWarpTeaserLogic          ComponentID = 126
	ComponentCarReplayData                       ComponentID = 127
	ComponentLevelImageCamera                    ComponentID = 128
	ComponentParticlesGPU                        ComponentID = 129
	ComponentKillGridBox                         ComponentID = 130
	ComponentGoldenSimples                       ComponentID = 131
	ComponentSetActiveAfterWarp                  ComponentID = 132
	ComponentAmbientAudioObject                  ComponentID = 133
	ComponentBiodomeAudioInterpolator            ComponentID = 134
	ComponentMoveElectricityAlongWire            ComponentID = 135
	ComponentActivationRampLogic                 ComponentID = 136
	ComponentZEventTrigger                       ComponentID = 137
	ComponentZEventListener                      ComponentID = 138
	ComponentBlackPortalLogic                    ComponentID = 139
	ComponentVRSettings                          ComponentID = 140
	ComponentCutsceneCamera                      ComponentID = 141
	ComponentProfileStats                        ComponentID = 142
	ComponentInterpolateToRotationOnTrigger      ComponentID = 143
	ComponentMoveAlongAttachedTrack              ComponentID = 144
	ComponentShowDuringGlitch                    ComponentID = 145
	ComponentAddCameraNoise                      ComponentID = 146
	ComponentCarVoiceTrigger                     ComponentID = 147
	ComponentHoverScreenSpecialObjectTrigger     ComponentID = 148
	ComponentReplaySettings                      ComponentID = 149
	ComponentCutsceneCamForTrailer               ComponentID = 150
	ComponentLevelInfos                          ComponentID = 151
	ComponentAchievementTrigger                  ComponentID = 152
	ComponentArenaCarSpawner                     ComponentID = 153
	ComponentAnimated                            ComponentID = 154
	ComponentBlinkInTrigger                      ComponentID = 155
	ComponentCarScreenImageTrigger               ComponentID = 156
	ComponentExcludeFromEMP                      ComponentID = 157
	ComponentInfiniteCooldownTrigger             ComponentID = 158
	ComponentDiscoverableStuntArea               ComponentID = 159
	ComponentForceVolume                         ComponentID = 160
	ComponentAdventureModeCompleteTrigger        ComponentID = 161
	ComponentCountdownTextMeshLogic              ComponentID = 162
	ComponentAbilitySignButtonColorLogic         ComponentID = 163
	ComponentGoldenAnimator                      ComponentID = 164
	ComponentStuntCollectibleSpawner             ComponentID = 165
	ComponentAnimatorAudio                       ComponentID = 166
	ComponentAnimatorCameraShake                  ComponentID = 167
	ComponentShardCluster                        ComponentID = 168
	ComponentAdventureSpecialIntro               ComponentID = 169
	ComponentAudioEffectZone                     ComponentID = 170
	ComponentCinematicCamera                     ComponentID = 171
	ComponentCinematicCameraFocalPoint           ComponentID = 172
	ComponentSetAbilitiesTrigger                 ComponentID = 173
	ComponentLostToEchoesIntroCutscene           ComponentID = 174
	ComponentCutsceneText                        ComponentID = 175
	ComponentUltraPlanet                         ComponentID = 176
	ComponentDeadCarLogic                        ComponentID = 177
	ComponentRollingBarrelDropperLogic           ComponentID = 178
	ComponentAdventureFinishTrigger              ComponentID = 179
	ComponentAchievementSettings                 ComponentID = 180
	ComponentInterpolateRTPCLogic                ComponentID = 181
	ComponentTriggerCooldownLogic                ComponentID = 182
	ComponentShadowsChangedListener              ComponentID = 183
	ComponentLookAtCamera                        ComponentID = 184
	ComponentInterceptorCollectable              ComponentID = 185
	ComponentCubeMapRenderer                     ComponentID = 186
	ComponentRealtimeReflectionRenderer          ComponentID = 187
	ComponentVirusDropperDroneLogic              ComponentID = 188
	ComponentOnCollisionBreakApartLogic          ComponentID = 189
	ComponentCheatSettings                       ComponentID = 190
	ComponentIgnoreInCullGroups                  ComponentID = 191
	ComponentIgnoreInputTrigger                  ComponentID = 192
	ComponentPowerPosterLogic                    ComponentID = 193
	ComponentMusicZone                           ComponentID = 194
	ComponentLightsFlickerLogic                  ComponentID = 195
	ComponentCutsceneManagerLogic                ComponentID = 196
	ComponentFadeOut                             ComponentID = 197
	ComponentFlock                               ComponentID = 198
	ComponentGPSTrigger                          ComponentID = 199
	ComponentResetOnCarDeath                     ComponentID = 200
	ComponentSprintMode                          ComponentID = 201
	ComponentStuntMode                           ComponentID = 202
	ComponentSoccerMode                          ComponentID = 203
	ComponentFreeRoamMode                        ComponentID = 204
	ComponentReverseTagMode                      ComponentID = 205
	ComponentLevelEditorPlayMode                 ComponentID = 206
	ComponentCoopSprintMode                      ComponentID = 207
	ComponentChallengeMode                       ComponentID = 208
	ComponentAdventureMode                       ComponentID = 209
	ComponentSpeedAndStyleMode                   ComponentID = 210
	ComponentTrackmogrifyMode                    ComponentID = 211
	ComponentDemoMode                            ComponentID = 212
	ComponentMainMenuMode                        ComponentID = 213
	ComponentLostToEchoesMode                    ComponentID = 214
	ComponentNexusMode                           ComponentID = 215
	ComponentTheOtherSideMode                    ComponentID = 216
)

// componentIDNames carries every declared ComponentID's wire name for
// diagnostics (warnings, raw-passthrough logging) even for the ~200 IDs
// with no typed schema.
var componentIDNames = map[ComponentID]string{
	ComponentInvalid: "Invalid", ComponentNone: "None",
	ComponentTransform: "Transform", ComponentMeshFilter: "MeshFilter",
	ComponentMeshRenderer: "MeshRenderer", ComponentSkinnedMeshRenderer: "SkinnedMeshRenderer",
	ComponentLineRenderer: "LineRenderer", ComponentTrailRenderer: "TrailRenderer",
	ComponentTextMesh: "TextMesh", ComponentAnimation: "Animation",
	ComponentLight: "Light", ComponentLensFlare: "LensFlare",
	ComponentParticleSystem: "ParticleSystem", ComponentProjector: "Projector",
	ComponentMeshCollider: "MeshCollider", ComponentSphereCollider: "SphereCollider",
	ComponentBoxCollider: "BoxCollider", ComponentCapsuleCollider: "CapsuleCollider",
	ComponentRigidbody: "Rigidbody", ComponentAudioSource: "AudioSource",
	ComponentConstantForce: "ConstantForce", ComponentBezierSplineTrack: "BezierSplineTrack",
	ComponentTrackSegment: "TrackSegment", ComponentTrackLink: "TrackLink",
	ComponentRigidbodyAxisRotationLogic: "RigidbodyAxisRotationLogic",
	ComponentBackAndForthSawLogic:       "BackAndForthSawLogic",
	ComponentCheckpointLogic:            "CheckpointLogic", ComponentLaserLogic: "LaserLogic",
	ComponentLightFlickerLogic: "LightFlickerLogic", ComponentSceneryCameraLogic: "SceneryCameraLogic",
	ComponentGroup: "Group", ComponentSkyboxAdder: "SkyboxAdder",
	ComponentLevelCubeMapRenderer: "LevelCubeMapRenderer", ComponentLevelGodRayCaster: "LevelGodRayCaster",
	ComponentTutorialBoxText: "TutorialBoxText", ComponentBoostPadLogic: "BoostPadLogic",
	ComponentCloudCreator: "CloudCreator", ComponentFlyingRingLogic: "FlyingRingLogic",
	ComponentPopupBlockerLogic: "PopupBlockerLogic", ComponentPulseLight: "PulseLight",
	ComponentPulseMaterial: "PulseMaterial", ComponentSmoothRandomPosition: "SmoothRandomPosition",
	ComponentSoccerGoalLogic: "SoccerGoalLogic", ComponentVirusMineLogic: "VirusMineLogic",
	ComponentAnimateUVs: "AnimateUVs", ComponentBrightenCarHeadlights: "BrightenCarHeadlights",
	ComponentTrackManipulationNode: "TrackManipulationNode", ComponentSpawnLaserLogic: "SpawnLaserLogic",
	ComponentGameData: "GameData", ComponentGraphicsSettings: "GraphicsSettings",
	ComponentAudioSettings: "AudioSettings", ComponentControlsSettings: "ControlsSettings",
	ComponentProfile: "Profile", ComponentLevelSet: "LevelSet",
	ComponentToolInputCombos: "ToolInputCombos", ComponentColorPreset: "ColorPreset",
	ComponentLocalLeaderboard: "LocalLeaderboard", ComponentAxisRotationLogic: "AxisRotationLogic",
	ComponentParticleEmitLogic: "ParticleEmitLogic", ComponentVirusSpiritSpawner: "VirusSpiritSpawner",
	ComponentGlitchTrigger: "GlitchTrigger", ComponentTeleporter: "Teleporter",
	ComponentPulseRotateOnTrigger: "PulseRotateOnTrigger", ComponentTeleporterEntrance: "TeleporterEntrance",
	ComponentTeleporterExit: "TeleporterExit", ComponentControlScheme: "ControlScheme",
	ComponentDeviceToSchemeLinks: "DeviceToSchemeLinks", ComponentObjectSpawnCircle: "ObjectSpawnCircle",
	ComponentInterpolateToPositionOnTrigger: "InterpolateToPositionOnTrigger",
	ComponentEngageBrokenPieces:             "EngageBrokenPieces", ComponentGravityToggle: "GravityToggle",
	ComponentCarSpawner: "CarSpawner", ComponentRaceStartCarSpawner: "RaceStartCarSpawner",
	ComponentLevelEditorCarSpawner: "LevelEditorCarSpawner", ComponentOnlyActiveInLevelEditor: "OnlyActiveInLevelEditor",
	ComponentInfoDisplayLogic: "InfoDisplayLogic", ComponentMusicTrigger: "MusicTrigger",
	ComponentTabPopulator: "TabPopulator", ComponentAdventureAbilitySettings: "AdventureAbilitySettings",
	ComponentIndicatorDisplayLogic: "IndicatorDisplayLogic", ComponentPulseCoreLogic: "PulseCoreLogic",
	ComponentPulseAll: "PulseAll", ComponentTeleporterExitCheckpoint: "TeleporterExitCheckpoint",
	ComponentLevelSettings: "LevelSettings", ComponentWingCorruptionZone: "WingCorruptionZone",
	ComponentGenerateCreditsNames: "GenerateCreditsNames", ComponentIntroCutsceneLightFadeIn: "IntroCutsceneLightFadeIn",
	ComponentQuarantineTrigger: "QuarantineTrigger", ComponentCarScreenTextDecodeTrigger: "CarScreenTextDecodeTrigger",
	ComponentGlitchFieldLogic: "GlitchFieldLogic", ComponentFogSkyboxAmbientChangeTrigger: "FogSkyboxAmbientChangeTrigger",
	ComponentFinalCountdownLogic: "FinalCountdownLogic", ComponentSetActiveOnIntroCutsceneStarted: "SetActiveOnIntroCutsceneStarted",
	ComponentSphericalGravityTrigger: "SphericalGravityTrigger", ComponentRaceEndLogic: "RaceEndLogic",
	ComponentEnableAbilitiesTrigger: "EnableAbilitiesTrigger", ComponentSphericalGravity: "SphericalGravity",
	ComponentGlobalFogLogic: "GlobalFogLogic", ComponentCreditsNameOrbLogic: "CreditsNameOrbLogic",
	ComponentDisableLocalCarWarnings: "DisableLocalCarWarnings", ComponentCustomName: "CustomName",
	ComponentSplineSegment: "SplineSegment", ComponentWarningPulseLight: "WarningPulseLight",
	ComponentRumbleZone: "RumbleZone", ComponentHideOnVirusSpiritEvent: "HideOnVirusSpiritEvent",
	ComponentTrackAttachment: "TrackAttachment", ComponentLevelPlaylist: "LevelPlaylist",
	ComponentProfileProgress: "ProfileProgress", ComponentGeneralSettings: "GeneralSettings",
	ComponentReplayAllPurposeTrigger: "ReplayAllPurposeTrigger", ComponentWorkshopPublishedFileInfos: "WorkshopPublishedFileInfos",
	ComponentWarpAnchor: "WarpAnchor", ComponentSetActiveOnMIDIEvent: "SetActiveOnMIDIEvent",
	ComponentTurnLightOnNearCar: "TurnLightOnNearCar", ComponentTraffic: "Traffic",
	ComponentTrackManipulatorNode: "TrackManipulatorNode", ComponentTurnLightOnNearCarTrigger: "TurnLightOnNearCarTrigger",
	ComponentAudioEventTrigger: "AudioEventTrigger", ComponentLevelEditorSettings: "LevelEditorSettings",
	ComponentEmpireProximityDoorLogic: "EmpireProximityDoorLogic", ComponentBiodome: "Biodome",
	ComponentTunnelHorrorLogic: "TunnelHorrorLogic", ComponentLogicTrigger: "LogicTrigger",
	ComponentChangeEmissiveColorLogicTriggerListener: "ChangeEmissiveColorLogicTriggerListener",
	ComponentMoveLogicTriggerListener:                "MoveLogicTriggerListener",
	ComponentRotateLogicTriggerListener:              "RotateLogicTriggerListener",
	ComponentScaleLogicTriggerListener:               "ScaleLogicTriggerListener",
	ComponentVirusSpiritWarpTeaserLogic:              "VirusSpiritWarpTeaserLogic",
	ComponentCarReplayData: "CarReplayData", ComponentLevelImageCamera: "LevelImageCamera",
	ComponentParticlesGPU: "ParticlesGPU", ComponentKillGridBox: "KillGridBox",
	ComponentGoldenSimples: "GoldenSimples", ComponentSetActiveAfterWarp: "SetActiveAfterWarp",
	ComponentAmbientAudioObject: "AmbientAudioObject", ComponentBiodomeAudioInterpolator: "BiodomeAudioInterpolator",
	ComponentMoveElectricityAlongWire: "MoveElectricityAlongWire", ComponentActivationRampLogic: "ActivationRampLogic",
	ComponentZEventTrigger: "ZEventTrigger", ComponentZEventListener: "ZEventListener",
	ComponentBlackPortalLogic: "BlackPortalLogic", ComponentVRSettings: "VRSettings",
	ComponentCutsceneCamera: "CutsceneCamera", ComponentProfileStats: "ProfileStats",
	ComponentInterpolateToRotationOnTrigger: "InterpolateToRotationOnTrigger", ComponentMoveAlongAttachedTrack: "MoveAlongAttachedTrack",
	ComponentShowDuringGlitch: "ShowDuringGlitch", ComponentAddCameraNoise: "AddCameraNoise",
	ComponentCarVoiceTrigger: "CarVoiceTrigger", ComponentHoverScreenSpecialObjectTrigger: "HoverScreenSpecialObjectTrigger",
	ComponentReplaySettings: "ReplaySettings", ComponentCutsceneCamForTrailer: "CutsceneCamForTrailer",
	ComponentLevelInfos: "LevelInfos", ComponentAchievementTrigger: "AchievementTrigger",
	ComponentArenaCarSpawner: "ArenaCarSpawner", ComponentAnimated: "Animated",
	ComponentBlinkInTrigger: "BlinkInTrigger", ComponentCarScreenImageTrigger: "CarScreenImageTrigger",
	ComponentExcludeFromEMP: "ExcludeFromEMP", ComponentInfiniteCooldownTrigger: "InfiniteCooldownTrigger",
	ComponentDiscoverableStuntArea: "DiscoverableStuntArea", ComponentForceVolume: "ForceVolume",
	ComponentAdventureModeCompleteTrigger: "AdventureModeCompleteTrigger", ComponentCountdownTextMeshLogic: "CountdownTextMeshLogic",
	ComponentAbilitySignButtonColorLogic: "AbilitySignButtonColorLogic", ComponentGoldenAnimator: "GoldenAnimator",
	ComponentStuntCollectibleSpawner: "StuntCollectibleSpawner", ComponentAnimatorAudio: "AnimatorAudio",
	ComponentAnimatorCameraShake: "AnimatorCameraShake", ComponentShardCluster: "ShardCluster",
	ComponentAdventureSpecialIntro: "AdventureSpecialIntro", ComponentAudioEffectZone: "AudioEffectZone",
	ComponentCinematicCamera: "CinematicCamera", ComponentCinematicCameraFocalPoint: "CinematicCameraFocalPoint",
	ComponentSetAbilitiesTrigger: "SetAbilitiesTrigger", ComponentLostToEchoesIntroCutscene: "LostToEchoesIntroCutscene",
	ComponentCutsceneText: "CutsceneText", ComponentUltraPlanet: "UltraPlanet",
	ComponentDeadCarLogic: "DeadCarLogic", ComponentRollingBarrelDropperLogic: "RollingBarrelDropperLogic",
	ComponentAdventureFinishTrigger: "AdventureFinishTrigger", ComponentAchievementSettings: "AchievementSettings",
	ComponentInterpolateRTPCLogic: "InterpolateRTPCLogic", ComponentTriggerCooldownLogic: "TriggerCooldownLogic",
	ComponentShadowsChangedListener: "ShadowsChangedListener", ComponentLookAtCamera: "LookAtCamera",
	ComponentInterceptorCollectable: "InterceptorCollectable", ComponentCubeMapRenderer: "CubeMapRenderer",
	ComponentRealtimeReflectionRenderer: "RealtimeReflectionRenderer", ComponentVirusDropperDroneLogic: "VirusDropperDroneLogic",
	ComponentOnCollisionBreakApartLogic: "OnCollisionBreakApartLogic", ComponentCheatSettings: "CheatSettings",
	ComponentIgnoreInCullGroups: "IgnoreInCullGroups", ComponentIgnoreInputTrigger: "IgnoreInputTrigger",
	ComponentPowerPosterLogic: "PowerPosterLogic", ComponentMusicZone: "MusicZone",
	ComponentLightsFlickerLogic: "LightsFlickerLogic", ComponentCutsceneManagerLogic: "CutsceneManagerLogic",
	ComponentFadeOut: "FadeOut", ComponentFlock: "Flock",
	ComponentGPSTrigger: "GPSTrigger", ComponentResetOnCarDeath: "ResetOnCarDeath",
	ComponentSprintMode: "SprintMode", ComponentStuntMode: "StuntMode",
	ComponentSoccerMode: "SoccerMode", ComponentFreeRoamMode: "FreeRoamMode",
	ComponentReverseTagMode: "ReverseTagMode", ComponentLevelEditorPlayMode: "LevelEditorPlayMode",
	ComponentCoopSprintMode: "CoopSprintMode", ComponentChallengeMode: "ChallengeMode",
	ComponentAdventureMode: "AdventureMode", ComponentSpeedAndStyleMode: "SpeedAndStyleMode",
	ComponentTrackmogrifyMode: "TrackmogrifyMode", ComponentDemoMode: "DemoMode",
	ComponentMainMenuMode: "MainMenuMode", ComponentLostToEchoesMode: "LostToEchoesMode",
	ComponentNexusMode: "NexusMode", ComponentTheOtherSideMode: "TheOtherSideMode",
}

// String names a component ID for diagnostics; unknown values (producer
// drift from a newer game version) render their raw numeric value.
func (id ComponentID) String() string {
	if name, ok := componentIDNames[id]; ok {
		return name
	}
	return fmt.Sprintf("%d", int32(id))
}
