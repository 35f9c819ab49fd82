package usecase

import (
	"fmt"
	"strings"

	"github.com/distrito-diamante/crm-api/internal/domain"
	"github.com/distrito-diamante/crm-api/internal/domain/entity"
	"github.com/distrito-diamante/crm-api/internal/domain/repository"
)

// CaratulaGenerator genera el PDF de la carátula de una póliza.
// Lo implementa el generador Maroto.
type CaratulaGenerator interface {
	GenerarCaratula(p *entity.Poliza, cliente *entity.Cliente) ([]byte, error)
}

// PolizaPDFUseCase genera la carátula descargable de una póliza.
type PolizaPDFUseCase struct {
	polizaRepo  repository.PolizaRepository
	clienteRepo repository.ClienteRepository
	generator   CaratulaGenerator
}

// NewPolizaPDFUseCase construye el caso de uso.
func NewPolizaPDFUseCase(
	polizaRepo repository.PolizaRepository,
	clienteRepo repository.ClienteRepository,
	generator CaratulaGenerator,
) *PolizaPDFUseCase {
	return &PolizaPDFUseCase{
		polizaRepo:  polizaRepo,
		clienteRepo: clienteRepo,
		generator:   generator,
	}
}

// DescargarCaratula carga la póliza enriquecida y su cliente y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la póliza no existe.
func (uc *PolizaPDFUseCase) DescargarCaratula(id int64) (pdfBytes []byte, filename string, err error) {
	p, err := uc.polizaRepo.GetByID(id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener póliza: %w", err)
	}
	if p == nil {
		return nil, "", domain.ErrNotFound
	}

	// El cliente puede faltar si el FK quedó colgante; la carátula sale igual.
	cliente, err := uc.clienteRepo.GetByID(p.ClienteID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}

	pdfBytes, err = uc.generator.GenerarCaratula(p, cliente)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("poliza_%s.pdf", sanitizeFilename(p.NumeroPoliza))
	return pdfBytes, filename, nil
}

// sanitizeFilename reemplaza los caracteres problemáticos del número de póliza
// para usarlo como nombre de archivo.
func sanitizeFilename(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, s)
}
