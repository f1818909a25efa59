package metrics

import (
	"context"
	"time"

	"github.com/olegtuta/refactoring/internal/domain"
	"github.com/olegtuta/refactoring/internal/service/provider"
	"github.com/prometheus/client_golang/prometheus"
)

// 定义Prometheus指标配置常量
const (
	// 摘要指标的分位数配置
	median = 0.5
	p90    = 0.9
	p99    = 0.99

	medianError = 0.05
	p90Error    = 0.01
	p99Error    = 0.001

	// 摘要指标的最大保留时间
	maxAgeDuration = 5 * time.Minute
)

// Collector 所有供应商共用的一组指标，一个进程只注册一次
type Collector struct {
	sendDurationSummary *prometheus.SummaryVec
	sendStatusCounter   *prometheus.CounterVec
}

// NewCollector 创建并注册指标
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		sendDurationSummary: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Namespace: "goods_return",
				Name:      "provider_send_duration_seconds",
				Help:      "供应商发送耗时统计（秒）",
				Objectives: map[float64]float64{
					median: medianError,
					p90:    p90Error,
					p99:    p99Error,
				},
				MaxAge: maxAgeDuration,
			},
			[]string{"provider", "channel", "event", "status"},
		),
		sendStatusCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goods_return",
				Name:      "provider_send_total",
				Help:      "供应商发送状态统计",
			},
			[]string{"provider", "channel", "event", "status"},
		),
	}
	reg.MustRegister(c.sendDurationSummary, c.sendStatusCounter)
	return c
}

// Provider 为供应商实现添加指标收集的装饰器
type Provider struct {
	provider  provider.Provider
	collector *Collector
	name      string
}

// Send 发送消息并记录指标
func (p *Provider) Send(ctx context.Context, msg domain.Message) (domain.SendResponse, error) {
	startTime := time.Now()
	response, err := p.provider.Send(ctx, msg)
	duration := time.Since(startTime).Seconds()

	status := response.Status
	if err != nil || status == "" {
		status = domain.SendStatusFailed
	}
	labels := []string{p.name, msg.Channel.String(), msg.Event.String(), status.String()}
	p.collector.sendStatusCounter.WithLabelValues(labels...).Inc()
	p.collector.sendDurationSummary.WithLabelValues(labels...).Observe(duration)
	return response, err
}

// NewProvider 创建一个新的带有指标收集的供应商
func NewProvider(name string, p provider.Provider, collector *Collector) *Provider {
	return &Provider{
		provider:  p,
		collector: collector,
		name:      name,
	}
}
