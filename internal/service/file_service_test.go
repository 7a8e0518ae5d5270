package service_test

import (
	"testing"

	"github.com/gcertilab/certilab-api/internal/dto"
	"github.com/gcertilab/certilab-api/internal/model"
	"github.com/gcertilab/certilab-api/internal/service"
)

func fileFixture(t *testing.T) (*fakeDeliveryRepo, service.FileService) {
	t.Helper()

	files := newFakeClassFileRepo()
	deliveries := newFakeDeliveryRepo()
	classes := newFakeClassRepo()
	workers := newFakeWorkerRepo()

	if err := classes.Create(&model.Class{PeriodID: 1, Title: "Docs", Type: model.ClassTypeDocumentation}); err != nil {
		t.Fatalf("seeding class: %v", err)
	}
	if err := workers.Create(&model.Worker{CompanyID: 1, FirstName: "Rosa", LastName: "Quispe", DNI: "12345678"}); err != nil {
		t.Fatalf("seeding worker: %v", err)
	}
	if err := files.Create(&model.ClassFile{ClassID: 1, Title: "Manual", URL: "http://x/manual.pdf"}); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	return deliveries, service.NewFileService(files, deliveries, classes, workers)
}

func boolPtr(v bool) *bool { return &v }

func TestSetDeliveryFlagsOnlyMoveForward(t *testing.T) {
	deliveries, svc := fileFixture(t)

	delivery, err := svc.AssignFile(dto.FileDeliveryRequest{ClassFileID: 1, WorkerID: 1})
	if err != nil {
		t.Fatalf("AssignFile: %v", err)
	}

	updated, err := svc.SetDeliveryFlags(delivery.ID, dto.FileDeliveryFlagRequest{Downloaded: boolPtr(true)})
	if err != nil {
		t.Fatalf("SetDeliveryFlags: %v", err)
	}
	if !updated.Downloaded || updated.Accepted {
		t.Errorf("flags = %v/%v, want downloaded only", updated.Downloaded, updated.Accepted)
	}

	// A false value must not clear an already-set flag.
	updated, err = svc.SetDeliveryFlags(delivery.ID, dto.FileDeliveryFlagRequest{
		Downloaded: boolPtr(false),
		Accepted:   boolPtr(true),
	})
	if err != nil {
		t.Fatalf("SetDeliveryFlags: %v", err)
	}
	if !updated.Downloaded || !updated.Accepted {
		t.Errorf("flags = %v/%v, want both set", updated.Downloaded, updated.Accepted)
	}

	stored, err := deliveries.FindByID(delivery.ID)
	if err != nil {
		t.Fatalf("reloading delivery: %v", err)
	}
	if !stored.Downloaded || !stored.Accepted {
		t.Error("flags not persisted")
	}
}
