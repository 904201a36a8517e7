package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Tiendas-api/internal/application/dto"
	"github.com/jhoicas/Tiendas-api/internal/application/usecase"
	"github.com/jhoicas/Tiendas-api/internal/domain"
	"github.com/jhoicas/Tiendas-api/pkg/password"
)

func newShopFixture() (*usecase.ShopUseCase, *usecase.UserUseCase, *memShopRepo, *memUserRepo) {
	users := newMemUserRepo()
	shops := newMemShopRepo(users)
	hasher := password.NewHasher()
	hasher.SetCost(bcrypt.MinCost)
	shopUC := usecase.NewShopUseCase(shops, users, &memTxRunner{shops: shops, users: users})
	userUC := usecase.NewUserUseCase(users, shops, hasher)
	return shopUC, userUC, shops, users
}

func TestShopCreate_NombreDuplicado_RetornaConflict(t *testing.T) {
	shopUC, _, shops, _ := newShopFixture()

	_, err := shopUC.Create(dto.CreateShopRequest{Name: "Acme"})
	require.NoError(t, err)

	_, err = shopUC.Create(dto.CreateShopRequest{Name: "Acme"})
	assert.ErrorIs(t, err, domain.ErrShopNameTaken)

	// La cantidad de tiendas no cambia.
	list, _ := shops.List(100, 0)
	assert.Len(t, list, 1)
}

func TestShopGetByID_IncluyeUsuariosAsociados(t *testing.T) {
	shopUC, userUC, _, _ := newShopFixture()

	shop, err := shopUC.Create(dto.CreateShopRequest{Name: "Acme"})
	require.NoError(t, err)

	in := createUserIn("a@x.com")
	in.ShopID = &shop.ID
	_, err = userUC.Create(in)
	require.NoError(t, err)

	out, err := shopUC.GetByID(shop.ID)
	require.NoError(t, err)
	require.Len(t, out.Users, 1)
	assert.Equal(t, "a@x.com", out.Users[0].Email)
}

func TestShopGetByID_Inexistente_RetornaNotFound(t *testing.T) {
	shopUC, _, _, _ := newShopFixture()
	_, err := shopUC.GetByID("44444444-4444-4444-4444-444444444444")
	assert.ErrorIs(t, err, domain.ErrShopNotFound)
}

func TestShopUpdate_MergeSoloCamposPresentes(t *testing.T) {
	shopUC, _, _, _ := newShopFixture()

	shop, err := shopUC.Create(dto.CreateShopRequest{Name: "Acme", Address: "Calle 1"})
	require.NoError(t, err)

	desc := "Tienda principal"
	out, err := shopUC.Update(shop.ID, dto.UpdateShopRequest{Description: &desc})
	require.NoError(t, err)

	assert.Equal(t, "Tienda principal", out.Description)
	assert.Equal(t, "Acme", out.Name, "los campos no enviados no cambian")
	assert.Equal(t, "Calle 1", out.Address)
}

func TestShopDelete_DesasociaUsuariosSinBorrarlos(t *testing.T) {
	shopUC, userUC, _, users := newShopFixture()

	shop, err := shopUC.Create(dto.CreateShopRequest{Name: "Acme"})
	require.NoError(t, err)

	in := createUserIn("a@x.com")
	in.ShopID = &shop.ID
	created, err := userUC.Create(in)
	require.NoError(t, err)

	require.NoError(t, shopUC.Delete(context.Background(), shop.ID))

	// El usuario sobrevive con shop_id en NULL: la relación es débil.
	stored, _ := users.GetByID(created.ID)
	require.NotNil(t, stored, "borrar la tienda no debe borrar el usuario")
	assert.Nil(t, stored.ShopID)

	_, err = shopUC.GetByID(shop.ID)
	assert.ErrorIs(t, err, domain.ErrShopNotFound)
}

func TestShopDelete_Inexistente_RetornaNotFound(t *testing.T) {
	shopUC, _, _, _ := newShopFixture()
	err := shopUC.Delete(context.Background(), "55555555-5555-5555-5555-555555555555")
	assert.ErrorIs(t, err, domain.ErrShopNotFound)
}
