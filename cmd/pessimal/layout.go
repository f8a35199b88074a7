package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/born-ml/pessimal/internal/config"
	"github.com/born-ml/pessimal/tensor"
)

var errTooLarge = errors.New("tensor exceeds tensor.max_bytes")

// layout describes a constructed tensor.
type layout struct {
	DType    tensor.DataType
	Storage  string
	Shape    tensor.Shape
	Strides  tensor.Shape
	Elements int
	Bytes    int
}

func newLayoutCmd() *cobra.Command {
	var uninitialized bool

	cmd := &cobra.Command{
		Use:   "layout [DIM...]",
		Short: "Build a tensor and print its shape, strides and size",
		Long: "Build a tensor with the configured dtype and storage and print its layout.\n" +
			"With no dimensions the tensor is rank 0 and holds one element.\n" +
			"Shapes whose buffer would exceed --tensor-max-bytes are rejected before allocation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, err := parseShape(args)
			if err != nil {
				return err
			}

			l, err := buildLayout(activeCfg.Tensor, shape, uninitialized)
			if err != nil {
				return err
			}

			slog.Debug("tensor layout",
				"dtype", l.DType.String(),
				"storage", l.Storage,
				"shape", l.Shape,
				"strides", l.Strides,
			)

			return printLayout(cmd.OutOrStdout(), l)
		},
	}

	cmd.Flags().BoolVar(&uninitialized, "uninitialized", false, "Allocate through the uninitialized path")

	return cmd
}

func parseShape(args []string) (tensor.Shape, error) {
	if len(args) > tensor.MaxRank {
		return nil, fmt.Errorf("%w: %d dimensions, at most %d supported", tensor.ErrRankMismatch, len(args), tensor.MaxRank)
	}

	shape := make(tensor.Shape, len(args))
	for i, arg := range args {
		dim, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("dimension %d: %w", i, err)
		}
		shape[i] = dim
	}

	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape %v: %w", shape, err)
	}
	return shape, nil
}

func printLayout(w io.Writer, l layout) error {
	_, err := fmt.Fprintf(w,
		"dtype:    %s\nstorage:  %s\nrank:     %d\nshape:    %v\nstrides:  %v\nelements: %d\nbytes:    %d\n",
		l.DType, l.Storage, len(l.Shape), []int(l.Shape), []int(l.Strides), l.Elements, l.Bytes)
	return err
}

// buildLayout dispatches on the configured dtype.
func buildLayout(cfg config.TensorConfig, shape tensor.Shape, uninitialized bool) (layout, error) {
	dtype, err := tensor.ParseDataType(cfg.DType)
	if err != nil {
		return layout{}, err
	}
	if err := checkByteLimit(shape, dtype, cfg.MaxBytes); err != nil {
		return layout{}, err
	}

	switch dtype {
	case tensor.Int8:
		return layoutForRank[int8](cfg.Storage, shape, uninitialized)
	case tensor.Int16:
		return layoutForRank[int16](cfg.Storage, shape, uninitialized)
	case tensor.Int32:
		return layoutForRank[int32](cfg.Storage, shape, uninitialized)
	case tensor.Int64:
		return layoutForRank[int64](cfg.Storage, shape, uninitialized)
	case tensor.Int:
		return layoutForRank[int](cfg.Storage, shape, uninitialized)
	case tensor.Uint8:
		return layoutForRank[uint8](cfg.Storage, shape, uninitialized)
	case tensor.Uint16:
		return layoutForRank[uint16](cfg.Storage, shape, uninitialized)
	case tensor.Uint32:
		return layoutForRank[uint32](cfg.Storage, shape, uninitialized)
	case tensor.Uint64:
		return layoutForRank[uint64](cfg.Storage, shape, uninitialized)
	case tensor.Uint:
		return layoutForRank[uint](cfg.Storage, shape, uninitialized)
	case tensor.Uintptr:
		return layoutForRank[uintptr](cfg.Storage, shape, uninitialized)
	case tensor.Float32:
		return layoutForRank[float32](cfg.Storage, shape, uninitialized)
	case tensor.Float64:
		return layoutForRank[float64](cfg.Storage, shape, uninitialized)
	default:
		return layout{}, fmt.Errorf("%w: %s", tensor.ErrUnknownDataType, dtype)
	}
}

// checkByteLimit rejects shapes whose buffer would exceed maxBytes. Zero means no limit.
func checkByteLimit(shape tensor.Shape, dtype tensor.DataType, maxBytes int) error {
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("invalid shape %v: %w", shape, err)
	}
	if maxBytes == 0 {
		return nil
	}
	n := shape.NumElements()
	if n > maxBytes/dtype.Size() {
		return fmt.Errorf("%w: shape %v of %s needs more than %d bytes", errTooLarge, []int(shape), dtype, maxBytes)
	}
	return nil
}

// layoutForRank dispatches on the runtime rank to a fixed-rank array type.
func layoutForRank[T tensor.Scalar](storage string, shape tensor.Shape, uninitialized bool) (layout, error) {
	switch len(shape) {
	case 0:
		return layoutFor[T, [0]int](storage, shape, uninitialized)
	case 1:
		return layoutFor[T, [1]int](storage, shape, uninitialized)
	case 2:
		return layoutFor[T, [2]int](storage, shape, uninitialized)
	case 3:
		return layoutFor[T, [3]int](storage, shape, uninitialized)
	case 4:
		return layoutFor[T, [4]int](storage, shape, uninitialized)
	case 5:
		return layoutFor[T, [5]int](storage, shape, uninitialized)
	case 6:
		return layoutFor[T, [6]int](storage, shape, uninitialized)
	case 7:
		return layoutFor[T, [7]int](storage, shape, uninitialized)
	case 8:
		return layoutFor[T, [8]int](storage, shape, uninitialized)
	default:
		return layout{}, fmt.Errorf("%w: rank %d", tensor.ErrRankMismatch, len(shape))
	}
}

func layoutFor[T tensor.Scalar, D tensor.Dims](storage string, shape tensor.Shape, uninitialized bool) (layout, error) {
	dims, err := tensor.DimsOf[D](shape)
	if err != nil {
		return layout{}, err
	}

	switch storage {
	case config.StorageHeap:
		return construct[T, D, *tensor.HeapStorage[T]](tensor.Heap[T](), storage, dims, uninitialized)
	case config.StoragePool:
		return construct[T, D, *tensor.HeapStorage[T]](tensor.NewPool[T](), storage, dims, uninitialized)
	case config.StorageMmap:
		l, closeFn, err := constructMmap[T](dims, uninitialized)
		if err != nil {
			return layout{}, err
		}
		return l, closeFn()
	default:
		return layout{}, fmt.Errorf("unknown storage %q", storage)
	}
}

func constructMmap[T tensor.Scalar, D tensor.Dims](dims D, uninitialized bool) (layout, func() error, error) {
	l, t, err := constructTensor[T, D, *tensor.MmapStorage[T]](tensor.Mmap[T](), config.StorageMmap, dims, uninitialized)
	if err != nil {
		return layout{}, nil, err
	}
	return l, t.StorageMut().Close, nil
}

func construct[T tensor.Scalar, D tensor.Dims, S tensor.Storage[T, S]](
	a tensor.Allocator[T, S], storage string, dims D, uninitialized bool,
) (layout, error) {
	l, _, err := constructTensor(a, storage, dims, uninitialized)
	return l, err
}

func constructTensor[T tensor.Scalar, D tensor.Dims, S tensor.Storage[T, S]](
	a tensor.Allocator[T, S], storage string, dims D, uninitialized bool,
) (layout, *tensor.Tensor[T, D, S], error) {
	create := tensor.Zeros[T, D, S]
	if uninitialized {
		create = tensor.Uninitialized[T, D, S]
	}

	t, err := create(a, dims)
	if err != nil {
		return layout{}, nil, fmt.Errorf("storage %q: %w", storage, err)
	}

	return layout{
		DType:    t.DType(),
		Storage:  storage,
		Shape:    t.Dims(),
		Strides:  tensor.ShapeOf(t.Strides()),
		Elements: t.NumElements(),
		Bytes:    t.ByteSize(),
	}, t, nil
}
