package game

import "math/rand/v2"

// Rand 可注入的随机数源
//
// 场景中所有随机决定（作物种类、摇摆速度、牲畜位置与目标、农夫劳作）
// 都通过它获得，测试可替换为固定序列。
type Rand interface {
	// Float64 返回 [0,1) 内的随机数
	Float64() float64
	// IntN 返回 [0,n) 内的随机整数
	IntN(n int) int
}

// NewRand 创建确定性的随机数源，相同种子产生相同序列
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SequenceRand 按给定序列循环返回的随机数源，用于可重复的测试与回放
type SequenceRand struct {
	values []float64
	next   int
}

// NewSequenceRand 创建循环返回 values 的随机数源；values 为空时始终返回 0
func NewSequenceRand(values ...float64) *SequenceRand {
	return &SequenceRand{values: values}
}

// Float64 返回序列中的下一个值
func (r *SequenceRand) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

// IntN 将下一个值映射到 [0,n)
func (r *SequenceRand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(r.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
