// Package atlaspack packs many small images into a small number of large
// GPU textures and hands back opaque handles naming a sub-rectangle inside
// one of them.
//
// The goal is to amortise the per-texture cost of a modern GPU API
// (binding, sampler state, draw-call batching) across many logical images
// -- glyphs, icons, sprites -- by giving them a shared physical backing.
//
// # Architecture
//
// An [AtlasManager] owns an ordered, append-only list of segments. Each
// segment is one real GPU texture plus a shelf-packing cursor. Allocation
// tries the current segment first; when it no longer fits, a new segment is
// created and becomes current. Handles are stable for the life of the
// manager: nothing ever moves or frees an allocation.
//
//	mgr, err := atlaspack.New(renderer, atlaspack.WithPadding(1))
//	handle, err := mgr.Allocate(atlaspack.Size{Width: 16, Height: 16})
//	tex := mgr.Texture(handle)
//
// Uploading pixels for many images at once is cheaper than one lock per
// image, because locking a streaming GPU texture typically forces a
// synchronisation point. [AtlasManager.AllocateAndUploadBatch] groups
// destinations by segment, locks each segment's bounding box once, and
// blits every source inside that single lock window.
//
// # What this package does not do
//
// atlaspack does not free, defragment, or repack individual allocations;
// it does not implement optimal bin-packing (shelf packing only); it does
// not evict, persist, mipmap, resample, or convert pixel formats. The
// underlying GPU resource calls (texture creation, locking, drawing) are
// supplied by a [Renderer] implementation -- see the backend/ subpackages
// for a CPU-only reference backend and GPU-backed adapters.
package atlaspack
