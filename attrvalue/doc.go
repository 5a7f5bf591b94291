/*
Package attrvalue models DynamoDB wire-format attribute values and flattens them
for tabular export.

A Value is an explicit tagged variant with one constructor per wire tag:

	item := attrvalue.Item{
	    "PK":   attrvalue.String("USER#1"),
	    "age":  attrvalue.Number("30"),
	    "tags": attrvalue.StringSet("a", "b"),
	}

Values are built once at the transport boundary, either from SDK types
(FromSDK, FromSDKItem) or from DynamoDB JSON (Value implements json.Unmarshaler).
When a malformed JSON value carries several tags, only the first tag in
Precedence order is honored; unrecognized tags become Unknown values holding the
raw text.

Decoding:

	row := attrvalue.DecodeItem(item)
	// row["age"] == int64(30), row["tags"] == "a, b"

Lists and maps are exported as canonical wire JSON and are not decoded
recursively.
*/
package attrvalue
