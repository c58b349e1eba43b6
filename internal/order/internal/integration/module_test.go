// Copyright 2024 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/emall/internal/cart"
	"github.com/ecodeclub/emall/internal/coupon"
	"github.com/ecodeclub/emall/internal/order"
	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ecodeclub/emall/internal/order/internal/web"
	"github.com/ecodeclub/emall/internal/pkg/snowflake"
	"github.com/ecodeclub/emall/internal/product"
	"github.com/ecodeclub/emall/internal/test"
	testioc "github.com/ecodeclub/emall/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testUID = int64(234)

func TestOrderModule(t *testing.T) {
	suite.Run(t, new(OrderModuleTestSuite))
}

type OrderModuleTestSuite struct {
	suite.Suite
	server    *egin.Component
	db        *egorm.Component
	mq        mq.MQ
	svc       order.Service
	productSN string
}

func (s *OrderModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.mq = testioc.InitMQ()
	cache := testioc.InitCache()

	productModule, err := product.InitModule(s.db, cache, s.mq)
	require.NoError(s.T(), err)
	cartModule := cart.InitModule(s.db, productModule)
	gen, err := snowflake.NewGenerator(1)
	require.NoError(s.T(), err)
	couponModule, err := coupon.InitModule(s.db, gen)
	require.NoError(s.T(), err)
	orderModule, err := order.InitModule(s.db, s.mq, productModule, couponModule, cartModule)
	require.NoError(s.T(), err)
	s.svc = orderModule.Svc

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: testUID,
		}))
	})
	cartModule.Hdl.PublicRoutes(server.Engine)
	orderModule.Hdl.PrivateRoutes(server.Engine)
	s.server = server

	s.productSN = s.seedProduct(productModule)
}

func (s *OrderModuleTestSuite) seedProduct(m *product.Module) string {
	t := s.T()
	id, err := m.AdminSvc.Save(context.Background(), product.Product{
		Name:  "保温杯",
		Desc:  "500ml 不锈钢保温杯",
		Image: "https://cdn.emall.internal/p/mug.png",
		Price: 990,
		Stock: 10,
	})
	require.NoError(t, err)
	require.NoError(t, m.AdminSvc.Publish(context.Background(), id))
	p, err := m.AdminSvc.Detail(context.Background(), id)
	require.NoError(t, err)
	return p.SN
}

func (s *OrderModuleTestSuite) TearDownSuite() {
	err := s.db.Exec("TRUNCATE TABLE `orders`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `order_items`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `cart_items`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `products`").Error
	require.NoError(s.T(), err)
}

func (s *OrderModuleTestSuite) addToCart(quantity int64) {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/cart/add", iox.NewJSONReader(map[string]any{
			"productSN": s.productSN,
			"quantity":  quantity,
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
}

func (s *OrderModuleTestSuite) TestCreateOrder() {
	t := s.T()
	s.addToCart(2)

	req, err := http.NewRequest(http.MethodPost,
		"/order/create", iox.NewJSONReader(web.CreateReq{
			Address: web.Address{
				Recipient: "张三",
				Phone:     "13888888888",
				Street:    "幸福路1号",
				City:      "上海",
				Province:  "上海",
				Zip:       "200000",
				Country:   "CN",
			},
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Order]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	resp := recorder.MustScan()
	assert.NotZero(t, resp.Data.SN)
	// 990 * 2 + 固定运费 + 10% 税
	assert.Equal(t, int64(1980), resp.Data.Subtotal)
	assert.Equal(t, domain.ShippingFee, resp.Data.ShippingFee)
	assert.Equal(t, int64(198), resp.Data.Tax)
	assert.Equal(t, int64(1980)+domain.ShippingFee+198, resp.Data.Total)
	assert.Equal(t, domain.StatusPending.ToUint8(), resp.Data.Status)

	// 下单之后购物车被清空,再次下单报购物车为空
	recorder2 := test.NewJSONResponseRecorder[any]()
	req2, err := http.NewRequest(http.MethodPost,
		"/order/create", iox.NewJSONReader(web.CreateReq{}))
	require.NoError(t, err)
	req2.Header.Set("content-type", "application/json")
	s.server.ServeHTTP(recorder2, req2)
	require.NotEqual(t, 200, recorder2.Code)
}

func (s *OrderModuleTestSuite) TestOrderLifecycle() {
	t := s.T()
	s.addToCart(1)

	o, err := s.svc.Create(context.Background(), testUID, domain.Address{
		Recipient: "李四",
		Phone:     "13999999999",
		Street:    "人民路2号",
		City:      "北京",
		Province:  "北京",
		Zip:       "100000",
		Country:   "CN",
	}, "")
	require.NoError(t, err)

	// 详情
	req, err := http.NewRequest(http.MethodPost,
		"/order/detail", iox.NewJSONReader(web.SNReq{SN: o.SN}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Order]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, o.SN, recorder.MustScan().Data.SN)

	// 取消
	req, err = http.NewRequest(http.MethodPost,
		"/order/cancel", iox.NewJSONReader(web.SNReq{SN: o.SN}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder2 := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder2, req)
	require.Equal(t, 200, recorder2.Code)

	got, err := s.svc.Detail(context.Background(), testUID, o.SN)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got.Status)
}

func (s *OrderModuleTestSuite) TestList() {
	t := s.T()
	s.addToCart(1)
	_, err := s.svc.Create(context.Background(), testUID, domain.Address{
		Recipient: "王五",
		Phone:     "13777777777",
		Street:    "建设路3号",
		City:      "广州",
		Province:  "广东",
		Zip:       "510000",
		Country:   "CN",
	}, "")
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost,
		"/order/list", iox.NewJSONReader(web.Page{Offset: 0, Limit: 10}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.ListResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	assert.True(t, resp.Data.Total >= 1)
	assert.NotEmpty(t, resp.Data.Orders)
}
