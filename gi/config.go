package gi

// GIQuality is a coarse quality preset carried through to refresh
// collaborators; the core itself only reports it.
type GIQuality int

const (
	QualityLow GIQuality = iota
	QualityMedium
	QualityHigh
	QualityUltra
	QualityEpic
)

func (q GIQuality) String() string {
	switch q {
	case QualityLow:
		return "low"
	case QualityMedium:
		return "medium"
	case QualityHigh:
		return "high"
	case QualityUltra:
		return "ultra"
	case QualityEpic:
		return "epic"
	default:
		return "unknown"
	}
}

// GIMethod selects the indirect-lighting approximation. Only LightProbes and
// VoxelGI are wired into sampling; the rest are extension points that
// currently contribute nothing.
type GIMethod int

const (
	MethodSSGI GIMethod = iota
	MethodVoxelGI
	MethodSDFGI
	MethodRTGI
	MethodLightProbes
	MethodHybrid
)

func (m GIMethod) String() string {
	switch m {
	case MethodSSGI:
		return "ssgi"
	case MethodVoxelGI:
		return "voxel-gi"
	case MethodSDFGI:
		return "sdf-gi"
	case MethodRTGI:
		return "rt-gi"
	case MethodLightProbes:
		return "light-probes"
	case MethodHybrid:
		return "hybrid"
	default:
		return "unknown"
	}
}

// GIConfig configures the orchestrator. Resolutions must be positive and
// UpdateRate at least one; NewGlobalIllumination clamps violations instead
// of failing.
type GIConfig struct {
	Enabled bool
	Method  GIMethod
	Quality GIQuality

	Bounces    int
	UpdateRate int // frames between refreshes

	VoxelResolution int
	SDFResolution   int

	MaxDistance float32
	Intensity   float32

	IndirectDiffuse  bool
	IndirectSpecular bool
	EmissiveBoost    float32
}

// DefaultGIConfig returns the stock medium-quality SDFGI setup.
func DefaultGIConfig() GIConfig {
	return GIConfig{
		Enabled:          true,
		Method:           MethodSDFGI,
		Quality:          QualityMedium,
		Bounces:          2,
		UpdateRate:       1,
		VoxelResolution:  128,
		SDFResolution:    256,
		MaxDistance:      200.0,
		Intensity:        1.0,
		IndirectDiffuse:  true,
		IndirectSpecular: true,
		EmissiveBoost:    1.0,
	}
}

// normalized clamps the config onto its documented invariants.
func (c GIConfig) normalized() GIConfig {
	if c.UpdateRate < 1 {
		c.UpdateRate = 1
	}
	if c.VoxelResolution < 1 {
		c.VoxelResolution = 1
	}
	if c.SDFResolution < 1 {
		c.SDFResolution = 1
	}
	if c.Bounces < 0 {
		c.Bounces = 0
	}
	if c.MaxDistance < 0 {
		c.MaxDistance = 0
	}
	if c.Intensity < 0 {
		c.Intensity = 0
	}
	return c
}
