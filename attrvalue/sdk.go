/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attrvalue

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// FromSDK converts an SDK attribute value at the transport boundary. Union
// members the SDK does not model (UnknownUnionMember, nil) become Unknown values.
func FromSDK(av types.AttributeValue) Value {
	switch tv := av.(type) {
	case *types.AttributeValueMemberS:
		return String(tv.Value)

	case *types.AttributeValueMemberN:
		return Number(tv.Value)

	case *types.AttributeValueMemberB:
		return Binary(tv.Value)

	case *types.AttributeValueMemberBOOL:
		return Bool(tv.Value)

	case *types.AttributeValueMemberNULL:
		return Null(tv.Value)

	case *types.AttributeValueMemberSS:
		return StringSet(tv.Value...)

	case *types.AttributeValueMemberNS:
		return NumberSet(tv.Value...)

	case *types.AttributeValueMemberBS:
		return BinarySet(tv.Value...)

	case *types.AttributeValueMemberL:
		list := make([]Value, len(tv.Value))
		for i, elem := range tv.Value {
			list[i] = FromSDK(elem)
		}
		return List(list...)

	case *types.AttributeValueMemberM:
		return Map(FromSDKItem(tv.Value))

	case *types.UnknownUnionMember:
		return Unknown(fmt.Sprintf("{%q:%q}", tv.Tag, tv.Value))

	default:
		return Unknown(fmt.Sprintf("%v", av))
	}
}

// FromSDKItem converts one SDK item.
func FromSDKItem(item map[string]types.AttributeValue) Item {
	out := make(Item, len(item))
	for name, av := range item {
		out[name] = FromSDK(av)
	}
	return out
}

// FromSDKItems converts a page of SDK items.
func FromSDKItems(items []map[string]types.AttributeValue) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		out[i] = FromSDKItem(item)
	}
	return out
}
