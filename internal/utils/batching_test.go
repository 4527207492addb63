package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchBufferAddAndClear(t *testing.T) {
	buf := NewBatchBuffer[string]()
	assert.False(t, buf.HasData())

	buf.Add("a")
	buf.Add("b")
	assert.Equal(t, 2, buf.Size())
	assert.True(t, buf.HasData())

	batch := buf.GetAndClear()
	require.Equal(t, []string{"a", "b"}, batch)
	assert.Zero(t, buf.Size())
	assert.Nil(t, buf.GetAndClear(), "empty buffer yields nil")
}

func TestBatchBufferConcurrentAdds(t *testing.T) {
	buf := NewBatchBuffer[int]()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			buf.Add(n)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, buf.Size())
}
