package redisx

const (
	// Heartbeat timestamp, ditulis device: device:{device_id}:last_seen -> unix seconds
	KeyDeviceLastSeen = "device:%s:last_seen"

	// Derived power state, ditulis sampler: device:{device_id}:power -> online|offline
	KeyDevicePower = "device:%s:power"
)
