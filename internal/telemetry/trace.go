// Package telemetry 将场景状态逐帧导出为 CSV，用于离线分析动画行为
package telemetry

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/gonewx/farmview/pkg/components"
	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/ecs"
	"github.com/gonewx/farmview/pkg/world"
)

// 实体类别
const (
	KindCrop   = "crop"
	KindAnimal = "animal"
	KindWorker = "worker"
)

// TraceRecord 一帧中一个实体的状态
// 不适用的列保持零值（如作物没有目标点，牲畜没有生长阶段）
type TraceRecord struct {
	Frame   int     `csv:"frame"`
	Kind    string  `csv:"kind"`
	Species string  `csv:"species"`
	X       float64 `csv:"x"`
	Y       float64 `csv:"y"`
	TargetX float64 `csv:"target_x"`
	TargetY float64 `csv:"target_y"`
	Stage   int     `csv:"stage"`
	Mode    string  `csv:"mode"`
	Health  float64 `csv:"health"`
}

// Snapshot 采集当前帧所有活动实体的状态
// 顺序：作物、牲畜、农夫，各自按实体 ID 升序
func Snapshot(frame int, w *world.World) []TraceRecord {
	em := w.Entities
	records := make([]TraceRecord, 0, len(w.Crops())+len(w.Animals())+2)

	for _, id := range w.Crops() {
		crop, ok := ecs.GetComponent[*components.CropComponent](em, id)
		if !ok {
			continue
		}
		x, y := w.CropPosition(crop)
		records = append(records, TraceRecord{
			Frame:   frame,
			Kind:    KindCrop,
			Species: crop.Type.String(),
			X:       x + crop.SwayOffset,
			Y:       y,
			Stage:   crop.GrowthStage,
		})
	}

	for _, id := range w.Animals() {
		animal, ok := ecs.GetComponent[*components.AnimalComponent](em, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		records = append(records, TraceRecord{
			Frame:   frame,
			Kind:    KindAnimal,
			Species: animal.Type.String(),
			X:       pos.X,
			Y:       pos.Y,
			TargetX: animal.Target.X,
			TargetY: animal.Target.Y,
			Stage:   animal.GaitFrame,
			Health:  animal.Health,
		})
	}

	for _, id := range w.Workers() {
		worker, ok := ecs.GetComponent[*components.WorkerComponent](em, id)
		if !ok {
			continue
		}
		species := "primary"
		if worker.Secondary {
			species = "secondary"
		}
		records = append(records, TraceRecord{
			Frame:   frame,
			Kind:    KindWorker,
			Species: species,
			X:       worker.X,
			Y:       w.SoilTop() - config.WorkerHeightAboveSoil,
			Stage:   worker.Phase,
			Mode:    worker.Mode.String(),
		})
	}

	return records
}

// TraceWriter 以 CSV 追加写入 TraceRecord，首次写入时输出表头
type TraceWriter struct {
	out           *countingWriter
	headerWritten bool
	rows          int
}

// NewTraceWriter 创建写入 w 的 TraceWriter
func NewTraceWriter(w io.Writer) *TraceWriter {
	return &TraceWriter{out: &countingWriter{w: w}}
}

// Write 追加一批记录；空批次不写任何内容
func (t *TraceWriter) Write(records []TraceRecord) error {
	if len(records) == 0 {
		return nil
	}

	if !t.headerWritten {
		if err := gocsv.Marshal(records, t.out); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		t.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, t.out); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
	}

	t.rows += len(records)
	return nil
}

// Rows 已写入的数据行数（不含表头）
func (t *TraceWriter) Rows() int {
	return t.rows
}

// BytesWritten 已写入的字节数
func (t *TraceWriter) BytesWritten() int64 {
	return t.out.n
}

// countingWriter 统计写入字节数
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
