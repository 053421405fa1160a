package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and the
// string-friendly [Duration] type, so operators can write "5m" instead of
// nanosecond counts in the config file.
type StructuredJSONConfig struct {
	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Mail struct {
		Profile     string   `json:"profile"`
		Host        string   `json:"host"`
		Port        int      `json:"port"`
		Username    string   `json:"username"`
		Password    string   `json:"password"`
		From        string   `json:"from"`
		SendTimeout Duration `json:"send_timeout"`
	} `json:"mail,omitempty"`

	Session struct {
		CookieName   string   `json:"cookie_name"`
		CookieSecure bool     `json:"cookie_secure"`
		TTL          Duration `json:"ttl"`
	} `json:"session,omitempty"`

	OTP struct {
		TTL           Duration `json:"ttl"`
		SweepInterval Duration `json:"sweep_interval"`
	} `json:"otp,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Mail: Mail{
			Profile:     jsonCfg.Mail.Profile,
			Host:        jsonCfg.Mail.Host,
			Port:        jsonCfg.Mail.Port,
			Username:    jsonCfg.Mail.Username,
			Password:    jsonCfg.Mail.Password,
			From:        jsonCfg.Mail.From,
			SendTimeout: time.Duration(jsonCfg.Mail.SendTimeout),
		},
		Session: Session{
			CookieName:   jsonCfg.Session.CookieName,
			CookieSecure: jsonCfg.Session.CookieSecure,
			TTL:          time.Duration(jsonCfg.Session.TTL),
		},
		OTP: OTP{
			TTL:           time.Duration(jsonCfg.OTP.TTL),
			SweepInterval: time.Duration(jsonCfg.OTP.SweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
