// farm_trace 无界面运行农场场景，将每帧实体状态导出为 CSV
//
// 用法：
//
//	go run ./cmd/farm_trace -level farm -month 4 -frames 600 -every 10 -out trace.csv
//
// 输入（关卡、月份、健康值）在整个运行期间保持不变；
// -hz 控制帧率，0 表示不限速。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gonewx/farmview/internal/telemetry"
	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/game"
	"github.com/gonewx/farmview/pkg/scenes"
	"github.com/gonewx/farmview/pkg/types"
	"github.com/gonewx/farmview/pkg/world"
)

var (
	levelFlag   = flag.String("level", "farm", "关卡：field/pasture/farm 或 1/2/3")
	monthFlag   = flag.Int("month", 1, "月份 1-6")
	cropsFlag   = flag.Float64("crops", 100, "作物健康值 0-100")
	animalsFlag = flag.Float64("animals", 100, "牲畜健康值 0-100")
	framesFlag  = flag.Int("frames", 600, "运行的帧数")
	everyFlag   = flag.Int("every", 1, "每隔多少帧采样一次")
	hzFlag      = flag.Float64("hz", 0, "帧率，0 表示不限速")
	seedFlag    = flag.Uint64("seed", 1, "随机种子")
	outFlag     = flag.String("out", "-", "输出文件，- 表示标准输出")
	scenesFlag  = flag.String("scenes", "data/scenes", "场景配置目录")
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "farm_trace: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	level, err := types.ParseLevel(*levelFlag)
	if err != nil {
		return err
	}
	if *framesFlag <= 0 {
		return fmt.Errorf("frames must be positive, got %d", *framesFlag)
	}
	every := max(*everyFlag, 1)

	configs, err := config.LoadSceneConfigs(*scenesFlag)
	if err != nil {
		return err
	}
	w, err := world.New(configs, config.GameWindowWidth, config.GameWindowHeight)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if *outFlag != "-" {
		f, err := os.Create(*outFlag)
		if err != nil {
			return fmt.Errorf("creating %s: %w", *outFlag, err)
		}
		defer f.Close()
		out = f
	}
	trace := telemetry.NewTraceWriter(out)

	state := game.NewFarmState()
	if err := state.SelectLevel(level); err != nil {
		return err
	}
	state.SetMonth(*monthFlag)
	state.AdjustCropHealth(*cropsFlag - game.MaxHealth)
	state.AdjustAnimalHealth(*animalsFlag - game.MaxHealth)
	inputs := state.Inputs(nil)
	log.Printf("[FarmTrace] level=%v month=%d health=%+v", inputs.Level, inputs.Month, inputs.Health)

	scheduler := scenes.NewFrameScheduler(w, game.NewRand(*seedFlag), nil)

	// 0 表示不限速：用足够大的速率代替
	hz := *hzFlag
	if hz <= 0 {
		hz = math.MaxFloat64
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var writeErr error
	frames := 0
	start := time.Now()
	runErr := scheduler.Run(ctx, hz, func() game.Inputs { return inputs }, func(frame int, w *world.World) bool {
		frames = frame
		if frame%every == 0 || frame == 1 {
			if err := trace.Write(telemetry.Snapshot(frame, w)); err != nil {
				writeErr = err
				return false
			}
		}
		return frame < *framesFlag
	})
	elapsed := time.Since(start)

	if writeErr != nil {
		return writeErr
	}
	if runErr != nil && runErr != context.Canceled {
		return runErr
	}

	fmt.Fprintf(os.Stderr, "%s frames, %s rows, %s written in %s\n",
		humanize.Comma(int64(frames)),
		humanize.Comma(int64(trace.Rows())),
		humanize.Bytes(uint64(trace.BytesWritten())),
		elapsed.Round(time.Millisecond))
	return nil
}
