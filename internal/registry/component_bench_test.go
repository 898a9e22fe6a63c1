package registry

import (
	"fmt"
	"testing"
)

func BenchmarkComponentRegistry_Register(b *testing.B) {
	registry := NewComponentRegistry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		registry.Register(&ComponentInfo{
			Name:       fmt.Sprintf("component%d", i),
			Category:   "bench",
			Parameters: []ParameterInfo{{Name: "variant", Type: "string"}},
		})
	}
}

func BenchmarkComponentRegistry_Get(b *testing.B) {
	registry := NewComponentRegistry()
	for i := 0; i < 1000; i++ {
		registry.Register(&ComponentInfo{Name: fmt.Sprintf("component%d", i)})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		registry.Get(fmt.Sprintf("component%d", i%1000))
	}
}

func BenchmarkComponentRegistry_List(b *testing.B) {
	registry := NewComponentRegistry()
	for i := 0; i < 100; i++ {
		registry.Register(&ComponentInfo{Name: fmt.Sprintf("component%d", i)})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = registry.List()
	}
}
