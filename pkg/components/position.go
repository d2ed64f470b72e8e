package components

// PositionComponent 存储实体在屏幕上的位置
// 对于牲畜，(X, Y) 是身体绘制的锚点
type PositionComponent struct {
	X float64
	Y float64
}
