package meshview

// Config is the slice of the scene configuration document that the
// renderer consumes: the scene camera position and vertical field of view.
// The host owns loading, editing, and persisting the configuration; the
// renderer only ever reads snapshots of it and never writes back.
type Config struct {
	// CameraPosition is the fixed-eye camera position in world space.
	CameraPosition [3]float32

	// CameraFOVDegrees is the vertical field of view in degrees.
	CameraFOVDegrees float32
}
