package parameter

// Blob force model (final tuning)
const (
	// BlobTension is spring stiffness pulling a vertex toward a stretched neighbor (1/sec²)
	BlobTension = 60.0
	// BlobPressure is outward acceleration at rest area (units/sec²)
	BlobPressure = 15.0
	// BlobDragTension is pointer spring stiffness, scaled again by dt per step
	BlobDragTension = 4.0
	// BlobGravity scales the host gravity vector
	BlobGravity = 1.5
	// BlobVertexDecay damps velocity relative to the body (1/sec)
	BlobVertexDecay = 0.4
	// BlobBodyDecay damps centroid velocity (1/sec)
	BlobBodyDecay = 0.03
	// BlobRestitution is the fraction of normal velocity kept on wall impact
	BlobRestitution = 0.2
	// BlobFriction damps tangential velocity on wall contact (1/sec)
	BlobFriction = 3.0
	// BlobAccelCap limits per-axis velocity change per step
	BlobAccelCap = 10.0
)

// Elastic force model (intermediate tuning: two-way springs, ungated pressure)
const (
	ElasticTension     = 40.0
	ElasticPressure    = 10.0
	ElasticDragTension = 4.0
	ElasticGravity     = 1.0
	ElasticVertexDecay = 0.6
	ElasticBodyDecay   = 0.05
	ElasticRestitution = 0.4
	ElasticFriction    = 2.0
	ElasticAccelCap    = 10.0
)

// Prototype force model (first tuning: radial pressure, per-step velocity loss, no cap)
const (
	PrototypeTension     = 0.03
	PrototypePressure    = 0.006
	PrototypeGravity     = 0.001
	PrototypeDamping     = 0.00005
	PrototypeRestitution = 0.9
	PrototypeFriction    = 0.3
)

// Shared numeric guards
const (
	// PressureSpan is the vertex count averaged on each side to estimate the local normal
	PressureSpan = 3
	// MinDistance floors any distance used as a divisor (world units)
	MinDistance = 1e-9
	// AreaFloor floors enclosed area as a fraction of rest area before the pressure ratio
	AreaFloor = 0.05
	// DragDeadZone is the centroid-to-target distance below which drag is ignored
	DragDeadZone = 1.0
)
