package config

import (
	"fmt"

	"github.com/santiagomed/politica/policy"
	"github.com/spf13/viper"
)

// requestFile mirrors policy.Request with catalog entries spelled as labels.
type requestFile struct {
	StoreName      string   `mapstructure:"store_name"`
	ContactEmail   string   `mapstructure:"contact_email"`
	ReturnWindow   int      `mapstructure:"return_window"`
	ExchangeWindow int      `mapstructure:"exchange_window"`
	Conditions     []string `mapstructure:"conditions"`
	RefundOptions  []string `mapstructure:"refund_options"`
}

// LoadRequest reads a pre-filled policy request from a yaml, json or toml file.
// Keys absent from the file keep the values of policy.DefaultRequest.
func LoadRequest(path string) (*policy.Request, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading request file: %w", err)
	}

	req := policy.DefaultRequest()
	rf := requestFile{
		ReturnWindow:   req.ReturnWindow,
		ExchangeWindow: req.ExchangeWindow,
	}
	if err := v.Unmarshal(&rf); err != nil {
		return nil, fmt.Errorf("error unmarshaling request file: %w", err)
	}

	req.StoreName = rf.StoreName
	req.ContactEmail = rf.ContactEmail
	req.ReturnWindow = rf.ReturnWindow
	req.ExchangeWindow = rf.ExchangeWindow

	if v.IsSet("conditions") {
		req.Conditions = nil
		for _, label := range rf.Conditions {
			c, err := policy.ParseCondition(label)
			if err != nil {
				return nil, fmt.Errorf("error in request file: %w", err)
			}
			if !req.HasCondition(c) {
				req.Conditions = append(req.Conditions, c)
			}
		}
	}

	if v.IsSet("refund_options") {
		req.RefundOptions = nil
		for _, label := range rf.RefundOptions {
			o, err := policy.ParseRefundOption(label)
			if err != nil {
				return nil, fmt.Errorf("error in request file: %w", err)
			}
			if !req.HasRefundOption(o) {
				req.RefundOptions = append(req.RefundOptions, o)
			}
		}
	}

	return req, nil
}
