// Package property models Notion page property values and validates them.
//
// A property value is a tagged union keyed by its "type" field. Every
// variant is a concrete struct implementing PropertyValue:
//   - Decode, DecodeResponse and DecodeRequest validate an untyped JSON shape
//     and return exactly one variant or the first structural mismatch as a
//     *ValidationError
//   - EncodeRequest renders a writable variant back to its wire fragment;
//     read-only variants (formula, rollup, unique_id, ...) always fail
//
// Response and request shapes share the same Go types. The Side passed to
// the decoder decides which server-assigned fields are required.
package property
