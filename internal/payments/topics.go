package payments

const (
	TopicOrderCreated   = "payment.order.created"
	TopicDevicePresence = "device.presence.changed"
)

// Partition key = order_id / device_id, supaya event untuk satu entity
// maintain urutan.
func PartitionKey(id string) []byte { return []byte(id) }
