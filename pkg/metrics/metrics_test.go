package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()

	if HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal未初始化")
	}
	if HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration未初始化")
	}
	if BorrowsTotal == nil {
		t.Error("BorrowsTotal未初始化")
	}
	if ReturnsTotal == nil {
		t.Error("ReturnsTotal未初始化")
	}
}

// TestInitMetrics_Idempotent 测试重复初始化不会panic（重复注册会panic）
func TestInitMetrics_Idempotent(t *testing.T) {
	InitMetrics()
	InitMetrics()
}

// TestCounter 测试Counter指标
func TestCounter(t *testing.T) {
	InitMetrics()

	before := getCounterValue(t, BorrowsTotal)

	IncCounter(BorrowsTotal)
	IncCounter(BorrowsTotal)
	IncCounter(BorrowsTotal)

	after := getCounterValue(t, BorrowsTotal)
	if after-before != 3 {
		t.Errorf("Counter增量错误: expected=3, got=%f", after-before)
	}
}

// TestCounterVec 测试带标签的Counter
func TestCounterVec(t *testing.T) {
	InitMetrics()

	IncCounterVec(BorrowsFailedTotal, map[string]string{"reason": "out_of_stock"})
	IncCounterVec(BorrowsFailedTotal, map[string]string{"reason": "out_of_stock"})
	IncCounterVec(BorrowsFailedTotal, map[string]string{"reason": "not_found"})

	value := getCounterVecValue(t, BorrowsFailedTotal, map[string]string{"reason": "out_of_stock"})
	if value < 2 {
		t.Errorf("CounterVec值错误: expected>=2, got=%f", value)
	}
}

// TestHistogram 测试Histogram指标
func TestHistogram(t *testing.T) {
	InitMetrics()

	ObserveHistogram(BorrowDuration, 0.02)
	ObserveHistogram(BorrowDuration, 0.2)

	// Histogram没有直接读值API，只验证不panic
}

// =========================================
// 辅助函数：读取指标当前值
// =========================================

func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	if err := counter.Write(m); err != nil {
		t.Fatalf("读取Counter失败: %v", err)
	}
	return m.GetCounter().GetValue()
}

func getCounterVecValue(t *testing.T, vec *prometheus.CounterVec, labels map[string]string) float64 {
	t.Helper()
	m := &dto.Metric{}
	if err := vec.With(labels).Write(m); err != nil {
		t.Fatalf("读取CounterVec失败: %v", err)
	}
	return m.GetCounter().GetValue()
}
