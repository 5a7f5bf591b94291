/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package testmodels holds single-table entity shapes used to seed test tables.
package testmodels

// User is a profile row keyed USER#<id> / PROFILE#<id>.
type User struct {
	PK         string   `dynamodbav:"PK"`
	SK         string   `dynamodbav:"SK"`
	EntityType string   `dynamodbav:"EntityType,omitempty"`
	Email      string   `dynamodbav:"Email,omitempty"`
	Age        int      `dynamodbav:"Age,omitempty"`
	Active     bool     `dynamodbav:"Active,omitempty"`
	Tags       []string `dynamodbav:"Tags,stringset,omitempty"`
}

// Order is an order row stored under its owner's partition.
type Order struct {
	PK        string            `dynamodbav:"PK"`
	SK        string            `dynamodbav:"SK"`
	Total     float64           `dynamodbav:"Total"`
	Status    string            `dynamodbav:"Status,omitempty"`
	DeletedAt *string           `dynamodbav:"DeletedAt"`
	Lines     []OrderLine       `dynamodbav:"Lines,omitempty"`
	Meta      map[string]string `dynamodbav:"Meta,omitempty"`
}

// OrderLine is one nested line of an Order.
type OrderLine struct {
	SKU string `dynamodbav:"sku"`
	Qty int    `dynamodbav:"qty"`
}
