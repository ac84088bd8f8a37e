package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"wasabi/internal/model"
	"wasabi/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory Repository Stubs ────────────────────────────────────────────────

type stubBolsaRepo struct {
	mu    sync.Mutex
	rows  []model.BolsaVinculada
	err   error
	calls int
}

var _ repository.BolsaRepository = (*stubBolsaRepo)(nil)

func (r *stubBolsaRepo) ListarVinculadas(_ context.Context, departamentoID int64, anio int) ([]model.BolsaVinculada, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	var out []model.BolsaVinculada
	for _, b := range r.rows {
		if b.DepartamentoID != departamentoID {
			continue
		}
		if anio > 0 && b.FechaInicio.Year() != anio {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *stubBolsaRepo) FindVinculada(_ context.Context, id int64) (*model.BolsaVinculada, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	for _, b := range r.rows {
		if b.ID == id {
			cp := b
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubBolsaRepo) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

type stubDepartamentoRepo struct {
	deps  map[int64]*model.Departamento
	calls int
}

var _ repository.DepartamentoRepository = (*stubDepartamentoRepo)(nil)

func (r *stubDepartamentoRepo) FindByID(_ context.Context, id int64) (*model.Departamento, error) {
	r.calls++
	d, ok := r.deps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

// stubOrdenRepo keeps the four tables as id sets. Transaccion snapshots them
// and restores the snapshot when fn fails, like a rollback would.
type stubOrdenRepo struct {
	ordenes        map[int64]bool
	facturas       map[int64]int64 // factura id → orden id
	ordenInversion map[int64]bool  // keyed by orden id
	ordenCompra    map[int64]bool  // keyed by orden id

	failStep  int // 1..4, 0 = never
	failErr   error
	beginErr  error
	txCalls   int
	committed bool
}

var _ repository.OrdenRepository = (*stubOrdenRepo)(nil)

func newStubOrdenRepo() *stubOrdenRepo {
	return &stubOrdenRepo{
		ordenes:        map[int64]bool{101: true, 103: true},
		facturas:       map[int64]int64{1: 101, 2: 103},
		ordenInversion: map[int64]bool{101: true},
		ordenCompra:    map[int64]bool{101: true},
	}
}

func (r *stubOrdenRepo) Transaccion(_ context.Context, fn func(tx repository.OrdenTx) error) error {
	r.txCalls++
	if r.beginErr != nil {
		return r.beginErr
	}
	snap := r.snapshot()
	if err := fn(&stubOrdenTx{r: r}); err != nil {
		r.restore(snap)
		return err
	}
	r.committed = true
	return nil
}

type ordenSnapshot struct {
	ordenes, oi, oc map[int64]bool
	facturas        map[int64]int64
}

func copyBool(m map[int64]bool) map[int64]bool {
	out := make(map[int64]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (r *stubOrdenRepo) snapshot() ordenSnapshot {
	f := make(map[int64]int64, len(r.facturas))
	for k, v := range r.facturas {
		f[k] = v
	}
	return ordenSnapshot{ordenes: copyBool(r.ordenes), oi: copyBool(r.ordenInversion), oc: copyBool(r.ordenCompra), facturas: f}
}

func (r *stubOrdenRepo) restore(s ordenSnapshot) {
	r.ordenes, r.ordenInversion, r.ordenCompra, r.facturas = s.ordenes, s.oi, s.oc, s.facturas
}

type stubOrdenTx struct{ r *stubOrdenRepo }

func (t *stubOrdenTx) fail(step int) error {
	if t.r.failStep == step {
		return t.r.failErr
	}
	return nil
}

func deleteKeys(m map[int64]bool, ids []int64) int64 {
	var n int64
	for _, id := range ids {
		if m[id] {
			delete(m, id)
			n++
		}
	}
	return n
}

func (t *stubOrdenTx) EliminarFacturas(_ context.Context, ids []int64) (int64, error) {
	if err := t.fail(1); err != nil {
		return 0, err
	}
	set := map[int64]bool{}
	for _, id := range ids {
		set[id] = true
	}
	var n int64
	for fid, oid := range t.r.facturas {
		if set[oid] {
			delete(t.r.facturas, fid)
			n++
		}
	}
	return n, nil
}

func (t *stubOrdenTx) EliminarOrdenInversion(_ context.Context, ids []int64) (int64, error) {
	if err := t.fail(2); err != nil {
		return 0, err
	}
	return deleteKeys(t.r.ordenInversion, ids), nil
}

func (t *stubOrdenTx) EliminarOrdenCompra(_ context.Context, ids []int64) (int64, error) {
	if err := t.fail(3); err != nil {
		return 0, err
	}
	return deleteKeys(t.r.ordenCompra, ids), nil
}

func (t *stubOrdenTx) EliminarOrdenes(_ context.Context, ids []int64) (int64, error) {
	if err := t.fail(4); err != nil {
		return 0, err
	}
	return deleteKeys(t.r.ordenes, ids), nil
}

type stubFacturaRepo struct {
	facturas map[int64]*model.Factura
	err      error
	calls    int
}

var _ repository.FacturaRepository = (*stubFacturaRepo)(nil)

func (r *stubFacturaRepo) FindByID(_ context.Context, id int64) (*model.Factura, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	f, ok := r.facturas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *stubFacturaRepo) UpdateEstado(_ context.Context, id int64, estado string) (int64, error) {
	r.calls++
	if r.err != nil {
		return 0, r.err
	}
	f, ok := r.facturas[id]
	if !ok {
		return 0, nil
	}
	f.Estado = estado
	return 1, nil
}

func (r *stubFacturaRepo) UpdateRutaPDF(_ context.Context, id int64, ruta string) error {
	r.calls++
	if f, ok := r.facturas[id]; ok {
		f.RutaPDF = &ruta
		return nil
	}
	return errors.New("factura inexistente")
}

// ── Fixtures ──────────────────────────────────────────────────────────────────

func fecha(s string) time.Time {
	t, err := time.Parse(fechaISO, s)
	if err != nil {
		panic(err)
	}
	return t
}

func bolsa(id, dep int64, inicio, fin string, cantidad int64, presupuesto, inversion bool) model.BolsaVinculada {
	return model.BolsaVinculada{
		Bolsa: model.Bolsa{
			ID: id, DepartamentoID: dep,
			FechaInicio: fecha(inicio), FechaFinal: fecha(fin),
			CantidadInicial: decimal.NewFromInt(cantidad),
		},
		TienePresupuesto: presupuesto,
		TieneInversion:   inversion,
	}
}

// departamento7 mirrors the repository integration fixture.
func departamento7() []model.BolsaVinculada {
	return []model.BolsaVinculada{
		bolsa(1, 7, "2023-01-01", "2023-12-31", 1200, true, false),
		bolsa(2, 7, "2023-03-01", "2023-12-31", 600, true, false),
		bolsa(3, 7, "2023-06-01", "2024-05-31", 2400, true, false),
		bolsa(4, 7, "2023-02-01", "2023-12-31", 900, false, true),
		bolsa(5, 7, "2022-01-01", "2022-12-31", 800, false, true),
		bolsa(6, 7, "2022-05-01", "2022-12-31", 300, true, true),
		bolsa(7, 7, "2021-01-01", "2021-12-31", 500, false, false),
	}
}

func newDepartamentoRepo() *stubDepartamentoRepo {
	return &stubDepartamentoRepo{deps: map[int64]*model.Departamento{7: {ID: 7, Nombre: "Informática"}}}
}
