package engine

// PlayerStats is a flat bag of lifetime gameplay counters. Its own wire
// version is read by ProfileStats, which embeds it, rather than stored
// or read by PlayerStats itself.
type PlayerStats struct {
	TotalDeathsCount      int64
	DeathsByLaserCount    int64
	DeathsByResetCount    int64
	DeathsByImpactCount   int64
	DeathsByOverheatCount int64
	DeathsByKillGridCount int64

	CarAsGibsTime           float64
	MetersDriven            float64
	MetersDrivenForward     float64
	MetersDrivenReverse     float64
	MetersAirborneFlying    float64
	MetersAirborneNotFlying float64
	MetersWallRiding        float64
	MetersCeilingRiding     float64
	MetersGrinding          float64
	BoostHeldDownTime       float64
	GripHeldDownTime        float64

	SplitCount          int64
	ImpactCount         int64
	CheckpointsHitCount int64
	JumpCount           int64
	WingsOpenCount      int64
	WingsCloseCount     int64
	HornCount           int64
	TrickCount          int64
	TotalPoints         int64
	BrokenLampCount     int64
	BrokenPumpkinCount  int64
	BrokenEggCount      int64

	TopSpeedMetersPerSecond        float64
	TopForwardSpeedMetersPerSecond float64
	TopReverseSpeedMetersPerSecond float64
	CooldownTriggerHitCount        int64
}

func (ps *PlayerStats) accept(v Visitor, version int32) error {
	if version >= 0 {
		deathFields := []*int64{
			&ps.TotalDeathsCount,
			&ps.DeathsByLaserCount,
			&ps.DeathsByResetCount,
			&ps.DeathsByImpactCount,
			&ps.DeathsByOverheatCount,
			&ps.DeathsByKillGridCount,
		}
		for _, f := range deathFields {
			if err := v.VisitI64(f); err != nil {
				return err
			}
		}

		f64Fields := []*float64{
			&ps.CarAsGibsTime,
			&ps.MetersDriven,
			&ps.MetersDrivenForward,
			&ps.MetersDrivenReverse,
			&ps.MetersAirborneFlying,
			&ps.MetersAirborneNotFlying,
			&ps.MetersWallRiding,
			&ps.MetersCeilingRiding,
			&ps.MetersGrinding,
			&ps.BoostHeldDownTime,
			&ps.GripHeldDownTime,
		}
		for _, f := range f64Fields {
			if err := v.VisitF64(f); err != nil {
				return err
			}
		}

		i64Fields := []*int64{
			&ps.SplitCount,
			&ps.ImpactCount,
			&ps.CheckpointsHitCount,
			&ps.JumpCount,
			&ps.WingsOpenCount,
			&ps.WingsCloseCount,
			&ps.HornCount,
			&ps.TrickCount,
			&ps.TotalPoints,
			&ps.BrokenLampCount,
			&ps.BrokenPumpkinCount,
			&ps.BrokenEggCount,
		}
		for _, f := range i64Fields {
			if err := v.VisitI64(f); err != nil {
				return err
			}
		}
	}

	if version >= 1 {
		if err := v.VisitF64(&ps.TopSpeedMetersPerSecond); err != nil {
			return err
		}
		if err := v.VisitF64(&ps.TopForwardSpeedMetersPerSecond); err != nil {
			return err
		}
		if err := v.VisitF64(&ps.TopReverseSpeedMetersPerSecond); err != nil {
			return err
		}
		if err := v.VisitI64(&ps.CooldownTriggerHitCount); err != nil {
			return err
		}
	}

	return nil
}

// modeTimesFixedLength is the length every per-mode play-time array is
// normalized to on read.
const modeTimesFixedLength = 17

// ProfileStats (VERSION 1).
type ProfileStats struct {
	AccumulatedPlayerStats PlayerStats

	TotalPlayTime       float64
	LevelEditorWorkTime float64
	LevelEditorPlayTime float64

	SoloModePlayTimes        []float64
	SplitscreenModePlayTimes []float64
	OnlineModePlayTimes      []float64

	AdventureStartTime    float64
	TrackmogrifyModifiers []*string
}

func (*ProfileStats) ComponentVersion() int32 { return 1 }

func (p *ProfileStats) Accept(v Visitor, version int32) error {
	if version >= 0 {
		playerStatsVersion := int32(1)
		if err := v.VisitI32(&playerStatsVersion); err != nil {
			return err
		}
		if err := p.AccumulatedPlayerStats.accept(v, playerStatsVersion); err != nil {
			return err
		}

		if err := v.VisitF64(&p.TotalPlayTime); err != nil {
			return err
		}
		if err := v.VisitF64(&p.LevelEditorWorkTime); err != nil {
			return err
		}
		if err := v.VisitF64(&p.LevelEditorPlayTime); err != nil {
			return err
		}

		if err := VisitArray(v, &p.SoloModePlayTimes, func(v Visitor, item *float64) error {
			return v.VisitF64(item)
		}); err != nil {
			return err
		}
		if err := VisitArray(v, &p.SplitscreenModePlayTimes, func(v Visitor, item *float64) error {
			return v.VisitF64(item)
		}); err != nil {
			return err
		}
		if err := VisitArray(v, &p.OnlineModePlayTimes, func(v Visitor, item *float64) error {
			return v.VisitF64(item)
		}); err != nil {
			return err
		}
		if v.Direction() == DirectionIn {
			p.SoloModePlayTimes = normalizeLength(p.SoloModePlayTimes, modeTimesFixedLength)
			p.SplitscreenModePlayTimes = normalizeLength(p.SplitscreenModePlayTimes, modeTimesFixedLength)
			p.OnlineModePlayTimes = normalizeLength(p.OnlineModePlayTimes, modeTimesFixedLength)
		}
	}

	if version >= 1 {
		if err := v.VisitF64(&p.AdventureStartTime); err != nil {
			return err
		}
		if err := VisitArray(v, &p.TrackmogrifyModifiers, func(v Visitor, item **string) error {
			return v.VisitString(item)
		}); err != nil {
			return err
		}
	}

	return nil
}
