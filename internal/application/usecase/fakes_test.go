package usecase_test

import (
	"github.com/distrito-diamante/crm-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

// fakeUsuarioRepo implementa repository.UsuarioRepository sobre un slice.
type fakeUsuarioRepo struct {
	usuarios []*entity.Usuario
	nextID   int64
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{nextID: 1}
}

func (f *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	u.ID = f.nextID
	f.nextID++
	copia := *u
	f.usuarios = append(f.usuarios, &copia)
	return nil
}

func (f *fakeUsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.ID == id {
			copia := *u
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) GetByHandle(handle string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.Usuario == handle {
			copia := *u
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) List(limit, offset int) ([]*entity.Usuario, error) {
	if offset >= len(f.usuarios) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.usuarios) {
		end = len(f.usuarios)
	}
	return f.usuarios[offset:end], nil
}

func (f *fakeUsuarioRepo) Count() (int, error) {
	return len(f.usuarios), nil
}

func (f *fakeUsuarioRepo) Update(u *entity.Usuario) error {
	for i, existente := range f.usuarios {
		if existente.ID == u.ID {
			copia := *u
			f.usuarios[i] = &copia
			return nil
		}
	}
	return nil
}

func (f *fakeUsuarioRepo) Delete(id int64) error {
	for i, u := range f.usuarios {
		if u.ID == id {
			f.usuarios = append(f.usuarios[:i], f.usuarios[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakePolizaRepo implementa repository.PolizaRepository sobre un slice.
// resolverNombres emula el JOIN de lectura llenando los campos derivados.
type fakePolizaRepo struct {
	polizas        []*entity.Poliza
	nextID         int64
	resolverNombre func(p *entity.Poliza)
}

func newFakePolizaRepo() *fakePolizaRepo {
	return &fakePolizaRepo{nextID: 1}
}

func (f *fakePolizaRepo) Create(p *entity.Poliza) error {
	p.ID = f.nextID
	f.nextID++
	copia := *p
	f.polizas = append(f.polizas, &copia)
	return nil
}

func (f *fakePolizaRepo) GetByID(id int64) (*entity.Poliza, error) {
	for _, p := range f.polizas {
		if p.ID == id {
			copia := *p
			if f.resolverNombre != nil {
				f.resolverNombre(&copia)
			}
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *fakePolizaRepo) List(limit, offset int) ([]*entity.Poliza, error) {
	if offset >= len(f.polizas) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.polizas) {
		end = len(f.polizas)
	}
	out := make([]*entity.Poliza, 0, end-offset)
	for _, p := range f.polizas[offset:end] {
		copia := *p
		if f.resolverNombre != nil {
			f.resolverNombre(&copia)
		}
		out = append(out, &copia)
	}
	return out, nil
}

func (f *fakePolizaRepo) Count() (int, error) {
	return len(f.polizas), nil
}

func (f *fakePolizaRepo) Update(p *entity.Poliza) error {
	for i, existente := range f.polizas {
		if existente.ID == p.ID {
			copia := *p
			f.polizas[i] = &copia
			return nil
		}
	}
	return nil
}

func (f *fakePolizaRepo) Delete(id int64) error {
	for i, p := range f.polizas {
		if p.ID == id {
			f.polizas = append(f.polizas[:i], f.polizas[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeTareaRepo implementa repository.TareaRepository sobre un mapa.
type fakeTareaRepo struct {
	tareas map[int64]*entity.Tarea
	nextID int64
}

func newFakeTareaRepo() *fakeTareaRepo {
	return &fakeTareaRepo{tareas: make(map[int64]*entity.Tarea), nextID: 1}
}

func (f *fakeTareaRepo) Create(t *entity.Tarea) error {
	t.ID = f.nextID
	f.nextID++
	copia := *t
	f.tareas[t.ID] = &copia
	return nil
}

func (f *fakeTareaRepo) GetByID(id int64) (*entity.Tarea, error) {
	t, ok := f.tareas[id]
	if !ok {
		return nil, nil
	}
	copia := *t
	return &copia, nil
}

func (f *fakeTareaRepo) List(limit, offset int) ([]*entity.Tarea, error) {
	out := make([]*entity.Tarea, 0, len(f.tareas))
	for _, t := range f.tareas {
		copia := *t
		out = append(out, &copia)
	}
	return out, nil
}

func (f *fakeTareaRepo) Count() (int, error) {
	return len(f.tareas), nil
}

func (f *fakeTareaRepo) Update(t *entity.Tarea) error {
	copia := *t
	f.tareas[t.ID] = &copia
	return nil
}

func (f *fakeTareaRepo) Delete(id int64) error {
	delete(f.tareas, id)
	return nil
}
