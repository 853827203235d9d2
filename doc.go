// Package wirecast is the decode/cast core of the Luma realtime API client.
//
// It provides:
//
//   - A process-wide symbol table that canonicalizes the dynamically keyed
//     mappings arriving from the remote API (Intern/NormalizeKeys)
//   - A schema-driven codec that casts untyped payload trees into typed
//     entities and back (Schema.Decode/Schema.Encode, Cast)
//   - A stable error model via Issues (JSON Pointer, code, message)
//   - Binding of decoded entities onto caller structs (Bind)
//
// Design policy:
//   - Keep only public APIs in the root package; converters live under codec/,
//     the gateway client under gateway/, the entity catalog under model/, and
//     the CLI under cmd/wirecast.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	raw := wirecast.NormalizeKeys(payload).(map[wirecast.Symbol]any)
//	msg, err := model.Message.Decode(raw)
//	wire := model.Message.Encode(msg)
package wirecast
