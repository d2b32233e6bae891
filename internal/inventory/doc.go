// Package inventory supplies the VM rows a grid is built from.
//
// Three providers implement Provider:
//
//   - Client: GET /api/vms on an inventory HTTP API (JSON)
//   - FileSource: a local JSON or YAML file with the same shape
//   - DemoSource: a deterministic generated fleet
//
// The payload carries the VM list and an optional order preference:
//
//	{"items": [{"id": "vm-host-001", "status": "online", "cpu": 12, "memory": 40}],
//	 "orderPreference": ["vm-host-001"]}
//
// YAML files use the key order_preference. Inventory.RowStore converts the
// payload into the immutable grid.RowStore; when no order preference is
// given the provider's row order is used.
//
// Errors are wrapped with the step that failed ("read data file", "execute
// request", "decode response"). Providers do not retry; the app layer owns
// the retry policy.
package inventory
