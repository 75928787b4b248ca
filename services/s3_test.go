package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hirescreen/config"
)

func TestNewS3Service_MissingCredentials(t *testing.T) {
	service, err := NewS3Service(config.StorageConfig{})

	assert.Error(t, err)
	assert.Nil(t, service)
}

func TestNewS3Service_PartialCredentials(t *testing.T) {
	service, err := NewS3Service(config.StorageConfig{
		AccessKey: "key",
		SecretKey: "secret",
		Region:    "af-south-1",
	})

	assert.Error(t, err)
	assert.Nil(t, service)
}

func TestCVKey(t *testing.T) {
	assert.Equal(t, "cv/CV-ABCD1234-0601", cvKey("CV-ABCD1234-0601"))
}
