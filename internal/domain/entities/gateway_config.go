package entities

import "time"

// GatewayType identifies a supported payment-gateway integration.
//
// The value doubles as the document-store sort key and as the prefix of the
// relational credential columns for that gateway, so it never changes once
// a merchant has configured the type.

type GatewayType string

const (
	GatewayAuthNet        GatewayType = "authnet"
	GatewayStripe         GatewayType = "stripe"
	GatewayPaypalExpress  GatewayType = "paypal_express"
	GatewayPaypalPayflow  GatewayType = "paypal_payflow"
	GatewayPayZang        GatewayType = "payzang"
	GatewayVantivWorldpay GatewayType = "vantiv_worldpay"
)

// GatewayConfig is a merchant's configuration for one gateway type.
//
// Storage model (DynamoDB, gateway_configs table):
//   - PK: merchant_id (number)
//   - SK: gateway_type (string)
//
// The relational store keeps a parallel copy of Fields in per-type columns
// and is authoritative for "is this type configured". Deleted configs are
// tombstoned (Deleted=true), never removed, so the audit trail survives.

type GatewayConfig struct {
	MerchantID int64             `json:"merchant_id"`
	Type       GatewayType       `json:"gateway_type"`
	Fields     map[string]string `json:"fields"`
	IsDefault  bool              `json:"is_default"`
	Deleted    bool              `json:"deleted"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// MerchantProfile is the relational system-of-record row for one merchant.
//
// Values is keyed by registry field key (which equals the relational column
// name, e.g. "authnet_login"). DefaultGateway is empty when no gateway is
// the merchant's default; charges fail closed in that window.

type MerchantProfile struct {
	MerchantID     int64
	DefaultGateway GatewayType
	Values         map[string]string
}

// AvailableGateway is one platform-supported gateway type offered to a
// merchant that has not configured it yet: localized label plus blank
// default field values.

type AvailableGateway struct {
	Type        GatewayType       `json:"gateway_type"`
	DisplayName string            `json:"display_name"`
	Fields      map[string]string `json:"fields"`
}

// Credentials is the processor credential triple resolved per merchant or
// per registrant. Resolved fresh on every call; never cached.

type Credentials struct {
	Login          string
	TransactionKey string
	Sandbox        bool
}

// MultiCheckoutGroup describes whether a registrant pays as part of a linked
// group and which co-registrants share the charge.

type MultiCheckoutGroup struct {
	RegistrantID    int64   `json:"registrant_id"`
	Linked          bool    `json:"linked"`
	CoRegistrantIDs []int64 `json:"co_registrant_ids"`
}
