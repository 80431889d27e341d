package engine

// LevelDifficulty is the author-assigned difficulty rating shown
// alongside a level's workshop listing.
type LevelDifficulty int32

const (
	LevelDifficultyCasual LevelDifficulty = iota
	LevelDifficultyNormal
	LevelDifficultyStunt
)

// LevelType names the game mode a level was built for.
type LevelType int32

const (
	LevelTypeClassic LevelType = iota
	LevelTypeStunt
	LevelTypeChallenge
	LevelTypeSprint
	LevelTypeSoccer
	LevelTypeFreeRoam
	LevelTypeSpeedAndStyle
)

// MusicCueId names a music track choosable for a level. The full
// catalog has grown in disjoint batches across releases (hence the
// gaps between ranges below); this lists the cues LevelInfo/
// ProfileProgress are known to reference, not the complete soundtrack.
type MusicCueId int32

const (
	MusicCueNone           MusicCueId = 0
	MusicCueMainMenu       MusicCueId = 1
	MusicCueLevelEditor    MusicCueId = 2
	MusicCueAdventureHub   MusicCueId = 10
	MusicCueSprintLoop1    MusicCueId = 100
	MusicCueSprintLoop2    MusicCueId = 101
	MusicCueStuntLoop1     MusicCueId = 200
	MusicCueStuntLoop2     MusicCueId = 201
	MusicCueChallengeLoop1 MusicCueId = 300
	MusicCueNexusLoop1     MusicCueId = 900
	MusicCueCreditsTheme   MusicCueId = 1000
	MusicCueUnknownLegacy  MusicCueId = 1053
)

// LevelInfo (VERSION 2). WorkshopCreatorID is stored on the wire as an
// i64 even though the game only ever populates the low 32 bits; it's
// widened here to carry a raw i64 faithfully instead of truncating it.
type LevelInfo struct {
	Name                     *string
	RelativePath             *string
	FileNameWithoutExtension *string
	LevelVersionDateTime     DateTime
	FileLastWriteDateTime    DateTime
	Modes                    map[int32]bool

	BronzeTime    float32
	BronzePoints  int32
	SilverTime    float32
	SilverPoints  int32
	GoldTime      float32
	GoldPoints    int32
	DiamondTime   float32
	DiamondPoints int32

	InfiniteCooldown   bool
	DisableFlying      bool
	DisableJumping     bool
	DisableBoosting    bool
	DisableJetRotating bool

	Difficulty        LevelDifficulty
	Type              LevelType
	WorkshopCreatorID uint64
	Music             MusicCueId

	Description *string
	CreatorName *string
}

func (*LevelInfo) ComponentVersion() int32 { return 2 }

func (l *LevelInfo) Accept(v Visitor, version int32) error {
	if version >= 0 {
		if err := v.VisitString(&l.Name); err != nil {
			return err
		}
		if err := v.VisitString(&l.RelativePath); err != nil {
			return err
		}
		if err := v.VisitString(&l.FileNameWithoutExtension); err != nil {
			return err
		}

		if err := v.VisitDateTime(&l.LevelVersionDateTime); err != nil {
			return err
		}
		if err := v.VisitDateTime(&l.FileLastWriteDateTime); err != nil {
			return err
		}

		if err := VisitDictionary(v, &l.Modes,
			func(v Visitor, k *int32) error { return v.VisitI32(k) },
			func(v Visitor, val *bool) error { return v.VisitBool(val) },
		); err != nil {
			return err
		}

		if err := v.VisitF32(&l.BronzeTime); err != nil {
			return err
		}
		if err := v.VisitI32(&l.BronzePoints); err != nil {
			return err
		}
		if err := v.VisitF32(&l.SilverTime); err != nil {
			return err
		}
		if err := v.VisitI32(&l.SilverPoints); err != nil {
			return err
		}
		if err := v.VisitF32(&l.GoldTime); err != nil {
			return err
		}
		if err := v.VisitI32(&l.GoldPoints); err != nil {
			return err
		}
		if err := v.VisitF32(&l.DiamondTime); err != nil {
			return err
		}
		if err := v.VisitI32(&l.DiamondPoints); err != nil {
			return err
		}

		if err := v.VisitBool(&l.InfiniteCooldown); err != nil {
			return err
		}
		if err := v.VisitBool(&l.DisableFlying); err != nil {
			return err
		}
		if err := v.VisitBool(&l.DisableJumping); err != nil {
			return err
		}
		if err := v.VisitBool(&l.DisableBoosting); err != nil {
			return err
		}
		if err := v.VisitBool(&l.DisableJetRotating); err != nil {
			return err
		}

		if err := VisitEnum(v, &l.Difficulty); err != nil {
			return err
		}
		if err := VisitEnum(v, &l.Type); err != nil {
			return err
		}

		value := int64(l.WorkshopCreatorID)
		if err := v.VisitI64(&value); err != nil {
			return err
		}
		l.WorkshopCreatorID = uint64(value)

		if err := VisitEnum(v, &l.Music); err != nil {
			return err
		}
	}

	if version >= 1 {
		if err := v.VisitString(&l.Description); err != nil {
			return err
		}
	}

	if version >= 2 {
		if err := v.VisitString(&l.CreatorName); err != nil {
			return err
		}
	}

	return nil
}

// levelInfosElementVersion is the on-wire version every LevelInfo record
// inside a LevelInfos list shares, read once from the outer header
// rather than once per element.
const levelInfosElementVersion int32 = 2

// LevelInfos (VERSION 0) is a length-prefixed outer array of LevelInfo
// records sharing one element-version header. Its own VERSION (0) is
// intentionally lower than LevelInfo's (2): the outer wrapper has never
// needed to change shape even as the element schema evolved.
type LevelInfos struct {
	Levels []LevelInfo
}

func (*LevelInfos) ComponentVersion() int32 { return 0 }

func (l *LevelInfos) Accept(v Visitor, version int32) error {
	elementVersion := levelInfosElementVersion
	if err := v.VisitI32(&elementVersion); err != nil {
		return err
	}
	return VisitArray(v, &l.Levels, func(v Visitor, item *LevelInfo) error {
		return item.Accept(v, elementVersion)
	})
}
