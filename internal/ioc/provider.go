package ioc

import (
	"fmt"
	"time"

	"github.com/go-kratos/aegis/circuitbreaker/sre"
	"github.com/gotomicro/ego/core/econf"
	"github.com/olegtuta/refactoring/internal/pkg/ratelimit"
	"github.com/olegtuta/refactoring/internal/service/provider"
	"github.com/olegtuta/refactoring/internal/service/provider/circuitbreaker"
	"github.com/olegtuta/refactoring/internal/service/provider/console"
	"github.com/olegtuta/refactoring/internal/service/provider/email"
	"github.com/olegtuta/refactoring/internal/service/provider/metrics"
	ratelimitp "github.com/olegtuta/refactoring/internal/service/provider/ratelimit"
	"github.com/olegtuta/refactoring/internal/service/provider/sequential"
	"github.com/olegtuta/refactoring/internal/service/provider/sms"
	"github.com/olegtuta/refactoring/internal/service/provider/sms/client"
	"github.com/olegtuta/refactoring/internal/service/provider/tracing"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const (
	defaultRateLimitInterval = time.Second
	defaultRateLimitRate     = 100
	consoleProviderName      = "console"
)

// Providers 按渠道分组的供应商列表，顺序即优先级
type Providers struct {
	Email provider.SelectorBuilder
	SMS   provider.SelectorBuilder
}

type smtpConfig struct {
	Name     string `yaml:"name"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	TLS      bool   `yaml:"tls"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type aliyunConfig struct {
	Name            string `yaml:"name"`
	RegionID        string `yaml:"regionID"`
	AccessKeyID     string `yaml:"accessKeyID"`
	AccessKeySecret string `yaml:"accessKeySecret"`
}

type tencentConfig struct {
	Name      string `yaml:"name"`
	RegionID  string `yaml:"regionID"`
	SecretID  string `yaml:"secretID"`
	SecretKey string `yaml:"secretKey"`
	AppID     string `yaml:"appID"`
}

type providerConfig struct {
	Email struct {
		SMTP    []smtpConfig `yaml:"smtp"`
		Console bool         `yaml:"console"`
	} `yaml:"email"`
	SMS struct {
		Aliyun  []aliyunConfig  `yaml:"aliyun"`
		Tencent []tencentConfig `yaml:"tencent"`
		Console bool            `yaml:"console"`
	} `yaml:"sms"`
}

// InitProviders 每个供应商依次包上限流、熔断、指标和链路追踪
func InitProviders(cmd redis.Cmdable, reg prometheus.Registerer) Providers {
	var cfg providerConfig
	if err := econf.UnmarshalKey("provider", &cfg); err != nil {
		panic(err)
	}

	interval := econf.GetDuration("provider.rateLimit.interval")
	if interval <= 0 {
		interval = defaultRateLimitInterval
	}
	rate := econf.GetInt("provider.rateLimit.rate")
	if rate <= 0 {
		rate = defaultRateLimitRate
	}
	d := decorator{
		limiter:   ratelimit.NewRedisSlidingWindowLimiter(cmd, interval, rate),
		collector: metrics.NewCollector(reg),
	}

	emailProviders, err := initEmailProviders(cfg, d)
	if err != nil {
		panic(err)
	}
	smsProviders, err := initSMSProviders(cfg, d)
	if err != nil {
		panic(err)
	}
	return Providers{
		Email: sequential.NewSelectorBuilder(emailProviders),
		SMS:   sequential.NewSelectorBuilder(smsProviders),
	}
}

func initEmailProviders(cfg providerConfig, d decorator) ([]provider.Provider, error) {
	providers := make([]provider.Provider, 0, len(cfg.Email.SMTP)+1)
	for _, c := range cfg.Email.SMTP {
		p, err := email.NewSMTPProvider(email.SMTPConfig{
			Host:     c.Host,
			Port:     c.Port,
			TLS:      c.TLS,
			Username: c.Username,
			Password: c.Password,
			From:     c.From,
		})
		if err != nil {
			return nil, fmt.Errorf("初始化 SMTP 供应商 %s 失败: %w", c.Name, err)
		}
		providers = append(providers, d.wrap(c.Name, p))
	}
	if cfg.Email.Console {
		providers = append(providers, d.wrap(consoleProviderName, console.NewProvider()))
	}
	return providers, nil
}

func initSMSProviders(cfg providerConfig, d decorator) ([]provider.Provider, error) {
	providers := make([]provider.Provider, 0, len(cfg.SMS.Aliyun)+len(cfg.SMS.Tencent)+1)
	for _, c := range cfg.SMS.Aliyun {
		cli, err := client.NewAliyunSMS(c.RegionID, c.AccessKeyID, c.AccessKeySecret)
		if err != nil {
			return nil, fmt.Errorf("初始化阿里云短信供应商 %s 失败: %w", c.Name, err)
		}
		providers = append(providers, d.wrap(c.Name, sms.NewSMSProvider(c.Name, cli)))
	}
	for _, c := range cfg.SMS.Tencent {
		cli, err := client.NewTencentSMS(c.RegionID, c.SecretID, c.SecretKey, c.AppID)
		if err != nil {
			return nil, fmt.Errorf("初始化腾讯云短信供应商 %s 失败: %w", c.Name, err)
		}
		providers = append(providers, d.wrap(c.Name, sms.NewSMSProvider(c.Name, cli)))
	}
	if cfg.SMS.Console {
		providers = append(providers, d.wrap(consoleProviderName, console.NewProvider()))
	}
	return providers, nil
}

type decorator struct {
	limiter   ratelimit.Limiter
	collector *metrics.Collector
}

func (d decorator) wrap(name string, p provider.Provider) provider.Provider {
	p = ratelimitp.NewProvider(name, p, d.limiter)
	p = circuitbreaker.NewProvider(name, p, sre.NewBreaker())
	p = metrics.NewProvider(name, p, d.collector)
	return tracing.NewProvider(p, name)
}
