package gateways

import (
	"eventpay/internal/domain/entities"
)

// Definition is one registry entry for a supported gateway type.
//
// Centralizing this table keeps per-type knowledge out of the config and
// payment flows: adding a gateway means adding one entry here, never a new
// conditional branch. FieldKeys double as the relational column names that
// get nulled out when the gateway is deleted, and Defaults are the blank
// values used to populate a missing document on first read.

type Definition struct {
	Type         entities.GatewayType
	DisplayNames map[string]string // language -> label, "en" always present
	FieldKeys    []string
	Defaults     map[string]string
	Enabled      func(values map[string]string) bool
}

// DisplayName returns the label for lang, falling back to English.
func (d Definition) DisplayName(lang string) string {
	if name, ok := d.DisplayNames[lang]; ok {
		return name
	}
	return d.DisplayNames["en"]
}

var registry = []Definition{
	{
		Type:         entities.GatewayAuthNet,
		DisplayNames: map[string]string{"en": "Authorize.Net", "es": "Authorize.Net"},
		FieldKeys:    []string{"authnet_login", "authnet_transaction_key", "authnet_sandbox"},
		Defaults:     map[string]string{"authnet_login": "", "authnet_transaction_key": "", "authnet_sandbox": "true"},
		Enabled:      func(v map[string]string) bool { return v["authnet_login"] != "" },
	},
	{
		Type:         entities.GatewayStripe,
		DisplayNames: map[string]string{"en": "Stripe", "es": "Stripe"},
		FieldKeys:    []string{"stripe_user_id", "stripe_secret_key"},
		Defaults:     map[string]string{"stripe_user_id": "", "stripe_secret_key": ""},
		Enabled:      func(v map[string]string) bool { return v["stripe_user_id"] != "" },
	},
	{
		Type:         entities.GatewayPaypalExpress,
		DisplayNames: map[string]string{"en": "PayPal Express Checkout", "es": "PayPal Express"},
		FieldKeys:    []string{"paypal_express_email"},
		Defaults:     map[string]string{"paypal_express_email": ""},
		Enabled:      func(v map[string]string) bool { return v["paypal_express_email"] != "" },
	},
	{
		Type:         entities.GatewayPaypalPayflow,
		DisplayNames: map[string]string{"en": "PayPal Payflow Pro", "es": "PayPal Payflow Pro"},
		FieldKeys:    []string{"paypal_payflow_vendor", "paypal_payflow_user", "paypal_payflow_password", "paypal_payflow_partner"},
		Defaults: map[string]string{
			"paypal_payflow_vendor":   "",
			"paypal_payflow_user":     "",
			"paypal_payflow_password": "",
			"paypal_payflow_partner":  "PayPal",
		},
		Enabled: func(v map[string]string) bool { return v["paypal_payflow_vendor"] != "" },
	},
	{
		Type:         entities.GatewayPayZang,
		DisplayNames: map[string]string{"en": "PayZang", "es": "PayZang"},
		FieldKeys:    []string{"payzang_account_id", "payzang_api_key"},
		Defaults:     map[string]string{"payzang_account_id": "", "payzang_api_key": ""},
		Enabled:      func(v map[string]string) bool { return v["payzang_account_id"] != "" },
	},
	{
		Type:         entities.GatewayVantivWorldpay,
		DisplayNames: map[string]string{"en": "Vantiv Worldpay", "es": "Vantiv Worldpay"},
		FieldKeys:    []string{"worldpay_merchant_id", "worldpay_secure_net_key"},
		Defaults:     map[string]string{"worldpay_merchant_id": "", "worldpay_secure_net_key": ""},
		Enabled:      func(v map[string]string) bool { return v["worldpay_merchant_id"] != "" },
	},
}

// Lookup returns the registry entry for a gateway type.
func Lookup(t entities.GatewayType) (Definition, bool) {
	for _, d := range registry {
		if d.Type == t {
			return d, true
		}
	}
	return Definition{}, false
}

// All returns every supported gateway definition in stable order.
func All() []Definition {
	out := make([]Definition, len(registry))
	copy(out, registry)
	return out
}

// AllFieldKeys returns the union of every gateway's field keys, in registry
// order. The relational repository uses it to map profile columns back into
// a value map.
func AllFieldKeys() []string {
	var keys []string
	for _, d := range registry {
		keys = append(keys, d.FieldKeys...)
	}
	return keys
}
