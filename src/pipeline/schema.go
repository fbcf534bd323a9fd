package pipeline

// GraphQLSchema describes the published collections. It is written as-is
// next to the artifacts and is not derived from the generated data.
const GraphQLSchema = `enum Role {
  admin
  user
  editor
}

enum OrderStatus {
  pending
  processing
  shipped
  delivered
  cancelled
}

enum PaymentMethod {
  credit_card
  paypal
  bank_transfer
}

enum PaymentStatus {
  succeeded
  failed
  pending
}

type Geo {
  lat: Float!
  lng: Float!
}

type Address {
  street: String!
  suite: String!
  city: String!
  state: String!
  zipcode: String!
  geo: Geo!
}

type Company {
  name: String!
  catchPhrase: String!
  bs: String!
}

type User {
  id: Int!
  name: String!
  username: String!
  email: String!
  role: Role!
  address: Address!
  phone: String!
  website: String!
  company: Company!
}

type PostCategory {
  id: Int!
  name: String!
  slug: String!
  description: String!
}

type ProductCategory {
  id: Int!
  name: String!
  slug: String!
  description: String!
}

type Post {
  id: Int!
  userId: Int!
  categoryId: Int!
  title: String!
  body: String!
  createdAt: String!
}

type Comment {
  id: Int!
  postId: Int!
  name: String!
  email: String!
  body: String!
}

type Rating {
  rate: Float!
  count: Int!
}

type Product {
  id: Int!
  title: String!
  description: String!
  price: Float!
  category: String!
  brand: String!
  stock: Int!
  image: String!
  rating: Rating!
}

type CartItem {
  productId: Int!
  quantity: Int!
}

type Cart {
  id: Int!
  userId: Int!
  date: String!
  products: [CartItem!]!
}

type LineItem {
  productId: Int!
  quantity: Int!
  price: Float!
}

type Order {
  id: Int!
  userId: Int!
  items: [LineItem!]!
  total: Float!
  status: OrderStatus!
  createdAt: String!
}

type Payment {
  id: Int!
  orderId: Int!
  amount: Float!
  method: PaymentMethod!
  status: PaymentStatus!
  transactionId: String!
  createdAt: String!
}

type Note {
  id: Int!
  userId: Int!
  title: String!
  content: String!
  createdAt: String!
}

type Todo {
  id: Int!
  userId: Int!
  title: String!
  completed: Boolean!
}

type Photo {
  id: Int!
  albumId: Int!
  title: String!
  url: String!
  thumbnailUrl: String!
}

type Query {
  users: [User!]!
  user(id: Int!): User
  postCategories: [PostCategory!]!
  productCategories: [ProductCategory!]!
  posts: [Post!]!
  post(id: Int!): Post
  comments: [Comment!]!
  products: [Product!]!
  product(id: Int!): Product
  carts: [Cart!]!
  orders: [Order!]!
  payments: [Payment!]!
  notes: [Note!]!
  todos: [Todo!]!
  photos: [Photo!]!
}
`
