package engine

// levelProgressFixedLength is the stable array length every
// LevelProgress medal/top-result list is normalized to on read,
// regardless of how many entries the producer actually wrote (older
// saves predate some medal tiers or result slots).
const levelProgressFixedLength = 17

// MedalStatus is one level's best-earned medal tier.
type MedalStatus int32

const (
	MedalStatusNone MedalStatus = iota
	MedalStatusBronze
	MedalStatusSilver
	MedalStatusGold
	MedalStatusDiamond
)

// LevelProgress is one level's saved progress: medals earned and best
// recorded results, nested inside ProfileProgress per relative level
// path.
type LevelProgress struct {
	LastPlayedLevelVersion *string
	PromptedToVoteOnLevel  bool
	Medals                 []MedalStatus
	TopResults             []int32
	TimeLastPlayed         int64
}

func (lp *LevelProgress) accept(v Visitor, version int32) error {
	if version >= 0 {
		if err := v.VisitString(&lp.LastPlayedLevelVersion); err != nil {
			return err
		}
		if err := v.VisitBool(&lp.PromptedToVoteOnLevel); err != nil {
			return err
		}
		if err := VisitArray(v, &lp.Medals, func(v Visitor, item *MedalStatus) error {
			return VisitEnum(v, item)
		}); err != nil {
			return err
		}
		if err := VisitArray(v, &lp.TopResults, func(v Visitor, item *int32) error {
			return v.VisitI32(item)
		}); err != nil {
			return err
		}
	}

	if version >= 1 {
		if err := v.VisitI64(&lp.TimeLastPlayed); err != nil {
			return err
		}
	}

	if v.Direction() == DirectionIn {
		lp.Medals = normalizeLength(lp.Medals, levelProgressFixedLength)
		lp.TopResults = normalizeLengthFill(lp.TopResults, levelProgressFixedLength, -1)
	}

	return nil
}

// ProfileProgress (VERSION 11). Keyed by relative level path.
type ProfileProgress struct {
	Levels map[string]LevelProgress

	TotalMedalCount           int64
	AdventureIndex            int32
	FinishedAdventureCount    int64
	UnlockedLevels            []*string
	TotalLevelsAttemptedCount int64
	TotalLevelsFinishedCount  int64
	CompletedTricks           []*string
	UnlockedAdventureLevels   []*string
	FinishedLostToEchoesCount int64
	UnlockedCampaignPlus      bool
	UnlockedLostToEchoes      bool
	UnseenLevels              []*string
	InterceptorPieceFlags     uint32
	StoredUnseenCarFlags      uint32
	CrabFlags                 uint32
}

func (*ProfileProgress) ComponentVersion() int32 { return 11 }

func (p *ProfileProgress) acceptLevelProgress(v Visitor) error {
	count := int32(len(p.Levels))
	if err := v.VisitI32(&count); err != nil {
		return err
	}

	progressVersion := int32(1)
	if err := v.VisitI32(&progressVersion); err != nil {
		return err
	}

	if v.Direction() == DirectionOut {
		for path, progress := range p.Levels {
			key := path
			if err := visitPlainString(v, &key); err != nil {
				return err
			}
			progress := progress
			if err := progress.accept(v, progressVersion); err != nil {
				return err
			}
		}
		return nil
	}

	levels := make(map[string]LevelProgress, count)
	for i := int32(0); i < count; i++ {
		var path string
		if err := visitPlainString(v, &path); err != nil {
			return err
		}
		var progress LevelProgress
		if err := progress.accept(v, progressVersion); err != nil {
			return err
		}
		levels[path] = progress
	}
	p.Levels = levels
	return nil
}

func (p *ProfileProgress) Accept(v Visitor, version int32) error {
	if err := p.acceptLevelProgress(v); err != nil {
		return err
	}

	if version < 2 {
		var totalMedalCount int32
		if v.Direction() == DirectionOut {
			totalMedalCount = int32(p.TotalMedalCount)
		}
		if err := v.VisitI32(&totalMedalCount); err != nil {
			return err
		}
		if v.Direction() == DirectionIn {
			p.TotalMedalCount = int64(totalMedalCount)
		}

		if err := v.VisitI32(&p.AdventureIndex); err != nil {
			return err
		}

		if version == 1 {
			var finishedAdventureCount bool
			if v.Direction() == DirectionOut {
				finishedAdventureCount = p.FinishedAdventureCount != 0
			}
			if err := v.VisitBool(&finishedAdventureCount); err != nil {
				return err
			}
			if v.Direction() == DirectionIn {
				if finishedAdventureCount {
					p.FinishedAdventureCount = 1
				} else {
					p.FinishedAdventureCount = 0
				}
			}

			if err := VisitArray(v, &p.UnlockedLevels, func(v Visitor, item **string) error {
				return v.VisitString(item)
			}); err != nil {
				return err
			}
		}
	} else {
		if err := VisitArray(v, &p.UnlockedLevels, func(v Visitor, item **string) error {
			return v.VisitString(item)
		}); err != nil {
			return err
		}
		if err := v.VisitI64(&p.TotalMedalCount); err != nil {
			return err
		}
		if err := v.VisitI32(&p.AdventureIndex); err != nil {
			return err
		}
		if err := v.VisitI64(&p.FinishedAdventureCount); err != nil {
			return err
		}
		if err := v.VisitI64(&p.TotalLevelsAttemptedCount); err != nil {
			return err
		}
		if err := v.VisitI64(&p.TotalLevelsFinishedCount); err != nil {
			return err
		}
	}

	if version >= 3 {
		if err := VisitArray(v, &p.CompletedTricks, func(v Visitor, item **string) error {
			return v.VisitString(item)
		}); err != nil {
			return err
		}
	}
	if version >= 4 {
		if err := VisitArray(v, &p.UnlockedAdventureLevels, func(v Visitor, item **string) error {
			return v.VisitString(item)
		}); err != nil {
			return err
		}
		if err := v.VisitI64(&p.FinishedLostToEchoesCount); err != nil {
			return err
		}
	}
	if version >= 5 {
		if err := v.VisitBool(&p.UnlockedCampaignPlus); err != nil {
			return err
		}
		if err := v.VisitBool(&p.UnlockedLostToEchoes); err != nil {
			return err
		}
	}
	if version >= 6 {
		if err := VisitArray(v, &p.UnseenLevels, func(v Visitor, item **string) error {
			return v.VisitString(item)
		}); err != nil {
			return err
		}
		var showCampaignPlusDot bool
		if err := v.VisitBool(&showCampaignPlusDot); err != nil {
			return err
		}
	}
	if version >= 7 {
		var showCampaignDot, showEchoesDot bool
		if err := v.VisitBool(&showCampaignDot); err != nil {
			return err
		}
		if err := v.VisitBool(&showEchoesDot); err != nil {
			return err
		}
	}
	if version >= 8 {
		if err := v.VisitU32(&p.InterceptorPieceFlags); err != nil {
			return err
		}
	}
	if version >= 9 {
		if err := v.VisitU32(&p.StoredUnseenCarFlags); err != nil {
			return err
		}
	}
	if version >= 11 {
		if err := v.VisitU32(&p.CrabFlags); err != nil {
			return err
		}
	}

	return nil
}
