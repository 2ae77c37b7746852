package datagraph

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// paramHash fingerprints a node's constructor parameters: the kind tag
// plus the msgpack encoding of the parameter struct, digested with
// sha256. Struct field order is fixed, so the fingerprint is stable
// across invocations.
func paramHash(kind string, params any) string {
	payload, err := msgpack.Marshal(params)
	if err != nil {
		// msgpack handles every parameter shape we construct; this
		// path is only reachable through a future parameter type it
		// cannot encode.
		payload = fmt.Appendf(nil, "%#v", params)
	}
	h := sha256.New()
	h.Write([]byte(kind))
	h.Write(payload)
	return kind + ":" + hex.EncodeToString(h.Sum(nil)[:16])
}
