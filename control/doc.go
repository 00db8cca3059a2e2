// Package control
// Author: momentics <momentics@gmail.com>
//
// Debug introspection layer.
//
// A Probes registry collects named state probes (pools, mapped files) and
// merges their snapshots under "name.key" entries. The registry is safe for
// concurrent use and itself satisfies api.Debug.
package control
