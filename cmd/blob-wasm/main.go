//go:build js && wasm

// Command blob-wasm exposes the host heap to JavaScript as globalThis.softbody.
//
//	const h = softbody.alloc(50)
//	softbody.init(h, 50, 100)
//	softbody.step(h, 50, 100, 800, 600, 0, 1, false, 0, 0, 1/40)
//	softbody.read(h, new Float64Array(50 * 4))
//	softbody.dealloc(h, 50)
//
// Failures come back as Error values rather than throwing.
package main

import (
	"fmt"
	"os"
	"syscall/js"
	"unsafe"

	"github.com/lixenwraith/softbody/host"
	"github.com/lixenwraith/softbody/physics"
)

type exports struct {
	heap      *host.Heap
	callbacks []js.Func
}

func jsError(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}

func arity(args []js.Value, n int) error {
	if len(args) < n {
		return fmt.Errorf("expected %d arguments, got %d", n, len(args))
	}
	return nil
}

func (e *exports) alloc(_ js.Value, args []js.Value) any {
	if err := arity(args, 1); err != nil {
		return jsError(err)
	}
	h, err := e.heap.Alloc(args[0].Int())
	if err != nil {
		return jsError(err)
	}
	return int(h)
}

func (e *exports) dealloc(_ js.Value, args []js.Value) any {
	if err := arity(args, 2); err != nil {
		return jsError(err)
	}
	if err := e.heap.Free(host.Handle(args[0].Int()), args[1].Int()); err != nil {
		return jsError(err)
	}
	return nil
}

func (e *exports) initRing(_ js.Value, args []js.Value) any {
	if err := arity(args, 3); err != nil {
		return jsError(err)
	}
	if err := e.heap.Init(host.Handle(args[0].Int()), args[1].Int(), args[2].Float()); err != nil {
		return jsError(err)
	}
	return nil
}

func (e *exports) step(_ js.Value, args []js.Value) any {
	if err := arity(args, 11); err != nil {
		return jsError(err)
	}
	err := e.heap.Step(
		host.Handle(args[0].Int()),
		args[1].Int(),
		args[2].Float(), args[3].Float(), args[4].Float(),
		args[5].Float(), args[6].Float(),
		args[7].Truthy(),
		args[8].Float(), args[9].Float(),
		args[10].Float(),
	)
	if err != nil {
		return jsError(err)
	}
	return nil
}

// read copies [x y vx vy]... into a Float64Array and returns the float count copied
func (e *exports) read(_ js.Value, args []js.Value) any {
	if err := arity(args, 2); err != nil {
		return jsError(err)
	}
	fs, err := e.heap.Floats(host.Handle(args[0].Int()))
	if err != nil {
		return jsError(err)
	}
	if len(fs) == 0 {
		return 0
	}
	dst := args[1]
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&fs[0])), len(fs)*8)
	view := js.Global().Get("Uint8Array").New(dst.Get("buffer"), dst.Get("byteOffset"), dst.Get("byteLength"))
	return js.CopyBytesToJS(view, raw) / 8
}

func (e *exports) presets(js.Value, []js.Value) any {
	names := physics.PresetNames()
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = n
	}
	return out
}

func (e *exports) register() {
	obj := js.Global().Get("Object").New()
	for name, fn := range map[string]func(js.Value, []js.Value) any{
		"alloc":   e.alloc,
		"dealloc": e.dealloc,
		"init":    e.initRing,
		"step":    e.step,
		"read":    e.read,
		"presets": e.presets,
	} {
		cb := js.FuncOf(fn)
		e.callbacks = append(e.callbacks, cb)
		obj.Set(name, cb)
	}
	js.Global().Set("softbody", obj)
}

func main() {
	preset := physics.Blob.Name
	if p := js.Global().Get("softbodyPreset"); p.Type() == js.TypeString {
		preset = p.String()
	}
	profile, ok := physics.Preset(preset)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown preset %q\n", preset)
		os.Exit(1)
	}

	heap, err := host.NewHeap(profile, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	e := &exports{heap: heap}
	e.register()

	// Callbacks run on this goroutine's behalf; keep the module alive
	select {}
}
