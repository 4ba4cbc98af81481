// Package vrpconfig is documented in types.go (the frozen Config record)
// and drone.go (the four DroneModel variants). See LoadFile in load.go for
// the on-disk YAML/JSON encoding.
package vrpconfig
