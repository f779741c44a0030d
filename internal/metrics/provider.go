package metrics

import (
	"context"
	"fmt"
	"io"
	"os"

	"go-nova-defense/internal/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Provider владеет SDK MeterProvider и файлом, куда пишутся метрики.
type Provider struct {
	meterProvider *sdkmetric.MeterProvider
	file          *os.File
	config        config.MetricsConfig
}

// New устанавливает глобальный MeterProvider с периодической выгрузкой в stdout
// или в файл cfg.Output. Если метрики выключены, глобальный meter остаётся no-op.
func New(cfg config.MetricsConfig) (*Provider, error) {
	if !cfg.Enabled {
		return Disabled(), nil
	}
	p := &Provider{config: cfg}

	var w io.Writer = os.Stdout
	if cfg.Output != "" {
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open metrics output: %w", err)
		}
		p.file = f
		w = f
	}

	exporter, err := stdoutmetric.New(stdoutmetric.WithWriter(w))
	if err != nil {
		p.closeFile()
		return nil, fmt.Errorf("failed to create metrics exporter: %w", err)
	}

	p.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter,
			sdkmetric.WithInterval(cfg.Interval),
		)),
	)
	otel.SetMeterProvider(p.meterProvider)
	return p, nil
}

// Disabled - провайдер без экспорта: глобальный meter остаётся no-op, Shutdown ничего не делает.
func Disabled() *Provider {
	return &Provider{}
}

// Shutdown выгружает накопленное и закрывает файл.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	err := p.meterProvider.Shutdown(ctx)
	p.closeFile()
	if err != nil {
		return fmt.Errorf("metrics shutdown failed: %w", err)
	}
	return nil
}

func (p *Provider) Enabled() bool {
	return p.config.Enabled
}

func (p *Provider) closeFile() {
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}
}
